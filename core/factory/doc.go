// Package factory is a small generic registry that builds named variants of a
// component from configuration. A variant is selected by its type string and
// receives its raw settings as a map, which it decodes into a typed struct.
//
// Example usage:
//
//	reg := factory.NewRegistry[normalize.Normalizer]()
//	reg.Register("dated", func(conf map[string]any) (normalize.Normalizer, error) {
//	    var c struct{ Year int `json:"year"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return normalize.Dated{Calendar: normalize.Calendar{Year: c.Year}}, nil
//	})
//	n, err := reg.Create(factory.ModuleConfig{Type: "dated", Conf: map[string]any{"year": 2025}})
package factory
