package app

import "osgi-mock/internal/types"

type InspectRequest struct {
	Classpath []string
	// Classes to inspect; every discovered descriptor when empty.
	Classes []string
	// ConfigLayers are applied on top of declared defaults, in order.
	ConfigLayers []string
}

type InspectResult struct {
	Components []types.ComponentMetadata
}

type ValidateRequest struct {
	Classpath []string
}

type ValidateResult struct {
	Classes []string
}

type ListRequest struct {
	Classpath []string
}

type ListResult struct {
	Classes []string
}
