package catalog

type yamlCatalog struct {
	Name  string    `yaml:"name"`
	Boxes []yamlBox `yaml:"boxes"`
}

type yamlBox struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Fee         string `yaml:"fee"`

	Categories []yamlCategory `yaml:"categories"`
}

type yamlCategory struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	// Limits is the storefront counter label, e.g. "(min: 2, max: 3)" or "0 / 3".
	Limits string `yaml:"limits"`
	Min    *int   `yaml:"min"`
	Max    *int   `yaml:"max"`

	Optional        bool  `yaml:"optional"`
	AllowDuplicates *bool `yaml:"allow_duplicates"`

	Products []yamlProduct `yaml:"products"`
}

type yamlProduct struct {
	ID              string `yaml:"id"`
	VariantID       string `yaml:"variant_id"`
	Title           string `yaml:"title"`
	Image           string `yaml:"image"`
	Price           string `yaml:"price"`
	AllowDuplicates *bool  `yaml:"allow_duplicates"`
}
