package format

import (
	"io"

	"gopkg.in/yaml.v3"
)

type yamlEncoder struct{}

func (yamlEncoder) ContentType() string {
	return "application/yaml; charset=UTF-8"
}

func (yamlEncoder) Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
