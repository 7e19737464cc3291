package app

import "context"

func (s Service) List(_ context.Context, req ListRequest) (ListResult, error) {
	loader, err := s.openClasspath(req.Classpath)
	if err != nil {
		return ListResult{}, err
	}
	defer loader.Close()

	classes, err := s.Classpath.FindDescriptors(loader)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Classes: classes}, nil
}
