package app

import (
	"context"

	"osgi-mock/internal/core"
)

// Validate parses every descriptor on the classpath and evaluates both
// queries against it. It stops at the first failing descriptor.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	loader, err := s.openClasspath(req.Classpath)
	if err != nil {
		return ValidateResult{}, err
	}
	defer loader.Close()

	classes, err := s.Classpath.FindDescriptors(loader)
	if err != nil {
		return ValidateResult{}, err
	}
	reader := core.NewComponentReader(s.Metadata)
	for _, name := range classes {
		if _, err := reader.Read(ctx, loader.LoadClass(name)); err != nil {
			return ValidateResult{}, err
		}
	}
	return ValidateResult{Classes: classes}, nil
}
