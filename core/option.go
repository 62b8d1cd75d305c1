package core

import "strings"

// Option is a function that configures the Core.
// Options return errors to enable validation during construction.
type Option func(*Core) error

// New creates a new Core instance with the provided options.
//
// Without options the Core reads the "sub" claim and decodes payloads with
// StandardDecoder.
//
// Example:
//
//	c, err := core.New(
//	    core.WithClaimNames("email", "sub"),
//	    core.WithDecoder(core.GoJSONDecoder),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) (*Core, error) {
	c := &Core{
		claimNames: []string{DefaultSubjectClaim},
		decoder:    StandardDecoder,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// WithClaimNames sets the claim names tried in priority order. The first name
// holding a string value wins.
//
// Default: ["sub"]
func WithClaimNames(names ...string) Option {
	return func(c *Core) error {
		if len(names) == 0 {
			return ErrClaimNamesEmpty
		}
		for _, name := range names {
			if strings.TrimSpace(name) == "" {
				return ErrClaimNameBlank
			}
		}
		c.claimNames = append([]string(nil), names...)
		return nil
	}
}

// WithDecoder sets the decoder used to parse token payloads.
//
// Default: StandardDecoder
func WithDecoder(d ClaimsDecoder) Option {
	return func(c *Core) error {
		if d == nil {
			return ErrDecoderNil
		}
		c.decoder = d
		return nil
	}
}
