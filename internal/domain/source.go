package domain

// Source describes where a category's result file lives and how to read it
type Source struct {
	Category string `yaml:"category"`
	Path     string `yaml:"path"`
	Format   string `yaml:"format"`
}
