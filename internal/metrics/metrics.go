package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	ServiceOpenFoodFacts = "openfoodfacts"
	ServiceSpoonacular   = "spoonacular"
	ServiceGemini        = "gemini"
	ServiceOpenAI        = "openai"
	ServiceS3            = "s3"
	ServiceSMTP          = "smtp"
)

var (
	ExternalCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecopanier",
		Name:      "external_calls_total",
		Help:      "Calls made to external collaborators, by service and outcome.",
	}, []string{"service", "outcome"})

	InventoryMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecopanier",
		Name:      "inventory_mutations_total",
		Help:      "Inventory add, update and remove operations.",
	}, []string{"operation"})

	ShoppingListMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecopanier",
		Name:      "shopping_list_mutations_total",
		Help:      "Shopping list add, remove and clear operations.",
	}, []string{"operation"})

	RecipeFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ecopanier",
		Name:      "recipe_demo_fallbacks_total",
		Help:      "AI generations answered with the demo recipe.",
	})
)

// ObserveExternal records one collaborator call.
func ObserveExternal(service string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	ExternalCalls.WithLabelValues(service, outcome).Inc()
}
