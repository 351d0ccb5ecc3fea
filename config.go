package linktray

// Config holds user-level defaults. It is loaded from an optional YAML file
// with environment overrides; see the yaml subpackage.
type Config struct {
	// ControlURL is the DevTools URL of a running browser to attach to.
	// Empty means launch a browser on demand. Env: LINKTRAY_BROWSER.
	ControlURL string `yaml:"control_url"`

	// DataDir overrides where the session store lives. Env: LINKTRAY_DATA.
	DataDir string `yaml:"data_dir"`

	// Markdown is the default for the panel's global markdown toggle,
	// which affects bulk copy actions only.
	Markdown bool `yaml:"markdown"`
}
