package domain

import (
	"fmt"
	"strings"
)

type Provider string

const (
	ProviderAWS   Provider = "aws"
	ProviderAzure Provider = "azure"
	ProviderGCP   Provider = "gcp"
)

var Providers = []Provider{ProviderAWS, ProviderAzure, ProviderGCP}

func ParseProvider(value string) (Provider, error) {
	provider := Provider(strings.ToLower(strings.TrimSpace(value)))
	for _, p := range Providers {
		if p == provider {
			return p, nil
		}
	}

	return "", fmt.Errorf("unknown provider %q", value)
}

func (p Provider) String() string {
	return string(p)
}
