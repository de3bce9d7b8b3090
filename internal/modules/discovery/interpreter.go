package discovery

import (
	"regexp"
	"strconv"
	"strings"

	"vendee/internal/models"
)

// knownItems is the vocabulary the interpreter can pick out of free text.
var knownItems = []string{
	"banana", "apple", "tomato", "onion", "potato", "carrot",
	"coriander", "mint", "orange", "rose", "marigold", "mango",
	"cucumber", "sunflower", "grapes", "cauliflower", "almonds", "cashews",
}

// deliveryTriggers mark a request as wanting the goods brought over.
var deliveryTriggers = []string{"deliver", "delivery", "home", "house", "soon"}

// clarifySuggestions is returned verbatim whenever no rule matches.
var clarifySuggestions = []string{
	"I need onions for cooking",
	"I want to make biryani",
	"I need vegetables delivered to my home",
	"I want to buy bananas",
	"I want tomatoes, grapes and carrots",
}

// mealChecklist is the ingredient list served for the compound-meal flow.
// Mint and coriander garnish the dish but are skippable.
var mealChecklist = []models.ChecklistItem{
	{Name: "Basmati Rice", Required: true},
	{Name: "Chicken", Required: true},
	{Name: "Onions", Required: true},
	{Name: "Tomatoes", Required: true},
	{Name: "Ginger", Required: true},
	{Name: "Garlic", Required: true},
	{Name: "Spices", Required: true},
	{Name: "Mint", Required: false},
	{Name: "Coriander", Required: false},
}

// Checklist returns the ingredient plan for a scenario, or nil when the
// scenario has none.
func Checklist(scenarioTag string) []models.ChecklistItem {
	if scenarioTag != models.ScenarioMealChecklist {
		return nil
	}
	return append([]models.ChecklistItem(nil), mealChecklist...)
}

var quantityPattern = regexp.MustCompile(`(\d+)\s*(kg|g|pieces?|bunches?)`)

// rule pairs a predicate with the scenario it selects. Rules are evaluated
// top to bottom and the first hit wins. The table is plain keyword
// matching; extend it by appending rules, not by making it smarter.
type rule struct {
	matches func(text string) bool
	tag     string
}

func anyOf(words ...string) func(string) bool {
	return func(text string) bool {
		for _, w := range words {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	}
}

func allOf(preds ...func(string) bool) func(string) bool {
	return func(text string) bool {
		for _, p := range preds {
			if !p(text) {
				return false
			}
		}
		return true
	}
}

var scenarioRules = []rule{
	{anyOf("banana"), models.ScenarioBananaVendors},
	{allOf(anyOf("tomato"), anyOf("grape", "carrot")), models.ScenarioMultiItemPlan},
	{anyOf("biryani", "dinner"), models.ScenarioMealChecklist},
	{anyOf("onion", "market"), models.ScenarioCheapestNearby},
	{anyOf("delivery", "home", "soon"), models.ScenarioDeliveryVendors},
}

// InterpreterInterface turns free text into a structured Intent.
type InterpreterInterface interface {
	Interpret(freeText string) models.Intent
}

type interpreter struct{}

func NewInterpreter() InterpreterInterface {
	return &interpreter{}
}

// Interpret runs keyword extraction and the scenario rule table over the
// request text. No rule matching yields the clarify scenario with a fixed
// set of example prompts.
func (p *interpreter) Interpret(freeText string) models.Intent {
	text := strings.ToLower(freeText)

	intent := models.Intent{
		WantedItemKeywords: extractItems(text),
		Quantities:         extractQuantities(text),
		DeliveryRequested:  wantsDelivery(text),
		ScenarioTag:        models.ScenarioClarify,
	}

	for _, r := range scenarioRules {
		if r.matches(text) {
			intent.ScenarioTag = r.tag
			return intent
		}
	}

	intent.Suggestions = clarifySuggestions
	return intent
}

func extractItems(text string) []string {
	found := []string{}
	for _, item := range knownItems {
		if strings.Contains(text, item) {
			found = append(found, item)
		}
	}
	return found
}

// extractQuantities pairs each recognized item with the first quantity
// mentioned in the text, defaulting to 1 kg.
func extractQuantities(text string) []models.RequestedItem {
	qty, unit := 1.0, "kg"
	if m := quantityPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			qty = n
		}
		unit = normalizeUnit(m[2])
	}

	out := []models.RequestedItem{}
	for _, item := range extractItems(text) {
		out = append(out, models.RequestedItem{Name: item, Quantity: qty, Unit: unit})
	}
	return out
}

func normalizeUnit(u string) string {
	switch u {
	case "pieces", "piece":
		return "piece"
	case "bunches", "bunch":
		return "bunch"
	default:
		return u
	}
}

func wantsDelivery(text string) bool {
	for _, w := range deliveryTriggers {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
