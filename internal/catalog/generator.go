package catalog

import (
	"math"

	"github.com/brianvoe/gofakeit/v7"
)

// Generator supplies the random attributes of generated products.
type Generator interface {
	ProductName() string
	ProductAdjective() string
	ProductMaterial() string
	ProductDescription() string
	// Price returns a price in [min, max] with cent precision.
	Price(min, max float64) float64
	// Rating returns a rating in [min, max] with one decimal.
	Rating(min, max float64) float64
	// IntBetween returns an integer in [min, max].
	IntBetween(min, max int) int
	Bool() bool
	Pick(options []string) string
}

// FakerGenerator is the Generator backed by gofakeit.
type FakerGenerator struct {
	faker *gofakeit.Faker
}

// NewFakerGenerator seeds a generator. A zero seed picks a random one.
func NewFakerGenerator(seed uint64) *FakerGenerator {
	return &FakerGenerator{faker: gofakeit.New(seed)}
}

func (g *FakerGenerator) ProductName() string        { return g.faker.ProductName() }
func (g *FakerGenerator) ProductAdjective() string   { return g.faker.AdjectiveDescriptive() }
func (g *FakerGenerator) ProductMaterial() string    { return g.faker.ProductMaterial() }
func (g *FakerGenerator) ProductDescription() string { return g.faker.ProductDescription() }
func (g *FakerGenerator) Bool() bool                 { return g.faker.Bool() }

func (g *FakerGenerator) Price(min, max float64) float64 {
	return g.faker.Price(min, max)
}

func (g *FakerGenerator) Rating(min, max float64) float64 {
	return math.Round(g.faker.Float64Range(min, max)*10) / 10
}

func (g *FakerGenerator) IntBetween(min, max int) int {
	return g.faker.Number(min, max)
}

func (g *FakerGenerator) Pick(options []string) string {
	return g.faker.RandomString(options)
}
