package schema

// Region maps a selectable WHO region to its data files.
type Region struct {
	Name       string `json:"name" mapstructure:"name"`
	Key        string `json:"key" mapstructure:"key"`
	Incidence  string `json:"incidence_file" mapstructure:"incidence"`
	Resistance string `json:"rr_file" mapstructure:"rr"`
}
