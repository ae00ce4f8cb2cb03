package recommending

import (
	"fmt"
	"strings"

	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

const systemPrompt = `You are a cloud cost optimization expert. Analyze the data you receive and answer with a numbered list of concrete recommendations.
Use exactly this format for every recommendation:

1. <short title>
Priority: <High|Medium|Low>
Potential savings: $<monthly amount in USD>
<one or more lines describing what to do and why>

Do not add any text before the first recommendation.`

var providerNames = map[domain.Provider]string{
	domain.ProviderAWS:   "AWS",
	domain.ProviderAzure: "Azure",
	domain.ProviderGCP:   "Google Cloud",
}

func resourcePrompt(provider domain.Provider, resource domain.ResourceInput) (string, error) {
	data, err := utils.PrettyJson(resource)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"Analyze this %s %s usage and suggest how to reduce its cost.\n\nResource data:\n%s",
		providerNames[provider],
		strings.ReplaceAll(string(resource.ResourceType), "_", " "),
		data,
	), nil
}

func analysisPrompt(provider domain.Provider, input domain.AnalysisInput) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the following %s account and suggest cost optimizations.\n", providerNames[provider])

	if len(input.CostData) > 0 {
		costs, err := utils.PrettyJson([]byte(input.CostData))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\nCost data:\n%s\n", costs)
	}

	if len(input.ResourceData) > 0 {
		resources, err := utils.PrettyJson(input.ResourceData)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\nResource data:\n%s\n", resources)
	}

	return b.String(), nil
}
