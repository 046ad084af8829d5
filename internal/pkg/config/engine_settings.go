package config

// EngineSettings tunes the cryptographic engine
type EngineSettings struct {
	// ExportKeyMaterial controls whether generate-key returns encoded key material alongside ids
	ExportKeyMaterial bool `mapstructure:"export_key_material"`
}

// DefaultEngineSettings returns settings matching the documented behaviour of generate-key
func DefaultEngineSettings() *EngineSettings {
	return &EngineSettings{ExportKeyMaterial: true}
}
