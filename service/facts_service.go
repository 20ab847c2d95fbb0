package services

import (
	"log"
	"math/rand"
	"sync"

	"glucose-advisor/util"
)

// defaultFacts is used when no facts file is available.
var defaultFacts = []string{
	"HbA1c reflects average blood glucose over roughly the past two to three months.",
	"A fasting glucose of 100 to 125 mg/dL is considered prediabetes.",
	"Regular physical activity helps muscles use glucose and improves insulin sensitivity.",
	"Fiber-rich foods slow the absorption of sugar and help control blood glucose.",
	"Stress hormones such as cortisol can raise blood glucose levels.",
	"Low blood glucose below 70 mg/dL should be treated promptly with fast-acting carbohydrates.",
	"Staying hydrated helps the kidneys flush out excess glucose through urine.",
	"Checking glucose two hours after a meal shows how your body handles that meal.",
}

// FactsService hands out random diabetes facts for the page sidebar.
type FactsService struct {
	facts []string
	mu    sync.Mutex
	rng   *rand.Rand
}

// NewFactsService uses facts and draws from rng. An empty list falls back to
// the built-in facts.
func NewFactsService(facts []string, rng *rand.Rand) *FactsService {
	if len(facts) == 0 {
		facts = defaultFacts
	}
	return &FactsService{facts: facts, rng: rng}
}

// NewFactsServiceFromFile loads facts from a JSON file, falling back to the
// built-in list when it cannot be read.
func NewFactsServiceFromFile(path string, rng *rand.Rand) *FactsService {
	facts, err := util.ReadFactsFromJSON(path)
	if err != nil {
		log.Printf("[FactsService] Using built-in facts: %v", err)
	}
	return NewFactsService(facts, rng)
}

// RandomFact returns a uniformly chosen fact.
func (fs *FactsService) RandomFact() string {
	// *rand.Rand is not safe for concurrent use.
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.facts[fs.rng.Intn(len(fs.facts))]
}

