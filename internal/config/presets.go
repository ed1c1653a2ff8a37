package config

var Presets = map[string]*Config{
	"decay": {
		Lambda: -1.0, T: 5.0, XT: 1.0,
		Theta0: 0.2, Theta1: 2.0, Samples: 400,
	},
	"growth": {
		Lambda: 0.5, T: 4.0, XT: 3.0,
		Theta0: 0.1, Theta1: 1.0, Samples: 400,
	},
	"flat": {
		Lambda: 0.0, T: 5.0, XT: 1.0,
		Theta0: 0.2, Theta1: 2.0, Samples: 400,
	},
	"stiff": {
		Lambda: -4.0, T: 3.0, XT: 0.5,
		Theta0: 10.0, Theta1: 5000.0, Samples: 400,
	},
	"short": {
		Lambda: -1.0, T: 1.0, XT: 1.0,
		Theta0: 1.0, Theta1: 4.0, Samples: 200,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
