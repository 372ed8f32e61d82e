package jobconfig

// LoadFile reads a volumetrics job from a YAML or JSON file.
func LoadFile(path string) (*JobConfig, error) {
	args, err := LoadArguments(path)
	if err != nil {
		return nil, err
	}

	return args.JobConfig()
}

// Parse parses a volumetrics job from YAML or JSON data.
func Parse(data []byte) (*JobConfig, error) {
	args, err := ParseArguments(data)
	if err != nil {
		return nil, err
	}

	return args.JobConfig()
}
