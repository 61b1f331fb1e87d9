package entity

// ConfigKeyInfo describes one configuration key for the key reference.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "frame.interval_ms". Keys inside the
	// windows array are written "windows[].webview.devtools".
	Key string `json:"key"`

	Type    string `json:"type"`
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists the accepted values of enum keys.
	Values []string `json:"values,omitempty"`

	// Range describes numeric constraints, e.g. "1-1000".
	Range string `json:"range,omitempty"`

	// Section groups related keys, e.g. "Frame".
	Section string `json:"section"`
}
