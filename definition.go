package actionfilter

import (
	"github.com/pkg/errors"

	nt "actionfilter/entity"
	"actionfilter/util"
)

// Definition is a query as written in a seed file, with filters split by type.
type Definition struct {
	Name       string `yaml:"name"`
	nt.Filters `yaml:",inline"`
}

// LoadDefinition reads a query definition from a yaml file.
func LoadDefinition(path string) (def *Definition, err error) {

	def = &Definition{}
	err = util.LoadYaml(def, path)
	if err != nil {
		def = nil
		err = errors.Wrapf(err, "failed to load definition")
	}
	return
}

// List returns the definition's filters as one ordered list.
func (def *Definition) List() nt.FilterList {
	return nt.Merge(def.Filters)
}
