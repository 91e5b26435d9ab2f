package engine

import (
	"math/rand"
	"sort"

	"github.com/piwi3910/GridPlace/internal/model"
)

// GeneticConfig holds parameters for the genetic arrangement search.
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	TournamentSize int
	EliteCount     int
	Seed           int64
}

// DefaultGeneticConfig returns sensible default parameters.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: 40,
		Generations:    60,
		MutationRate:   0.15,
		TournamentSize: 3,
		EliteCount:     2,
		Seed:           42,
	}
}

// chromosome is a candidate placement order: a permutation of item indices.
type chromosome struct {
	order   []int
	fitness fitness
}

// fitness orders chromosomes the same way Arrangement.Better does.
type fitness struct {
	unplaced int
	extent   int
	height   int
}

func (f fitness) better(other fitness) bool {
	if f.unplaced != other.unplaced {
		return f.unplaced < other.unplaced
	}
	if f.extent != other.extent {
		return f.extent < other.extent
	}
	return f.height < other.height
}

type geneticArranger struct {
	grid   model.GridSize
	items  []model.Item
	config GeneticConfig
	rng    *rand.Rand
}

// ArrangeGenetic searches for an item order whose first-fit placement
// packs tightest. The result is never worse than the largest-area-first
// order, which seeds the population.
func ArrangeGenetic(grid model.GridSize, items []model.Item, config GeneticConfig) Arrangement {
	if len(items) < 2 || config.PopulationSize < 1 {
		a, _ := Arrange(grid, items, StrategyAreaDesc)
		a.Strategy = StrategyGenetic
		return a
	}

	if len(items) > 20 {
		config.Generations += config.Generations / 2
	}

	g := &geneticArranger{
		grid:   grid,
		items:  items,
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
	best := g.run()
	a := replace(grid, items, best.order)
	a.Strategy = StrategyGenetic
	return a
}

func (g *geneticArranger) run() chromosome {
	population := g.initPopulation()
	for i := range population {
		population[i].fitness = g.evaluate(population[i])
	}

	for gen := 0; gen < g.config.Generations; gen++ {
		sortByFitness(population)

		newPop := make([]chromosome, 0, g.config.PopulationSize)

		eliteCount := g.config.EliteCount
		if eliteCount > len(population) {
			eliteCount = len(population)
		}
		for i := 0; i < eliteCount; i++ {
			newPop = append(newPop, copyChromosome(population[i]))
		}

		for len(newPop) < g.config.PopulationSize {
			parent1 := g.tournamentSelect(population)
			parent2 := g.tournamentSelect(population)
			child := g.orderCrossover(parent1, parent2)
			g.mutate(&child)
			child.fitness = g.evaluate(child)
			newPop = append(newPop, child)
		}
		population = newPop
	}

	sortByFitness(population)
	return population[0]
}

func sortByFitness(population []chromosome) {
	sort.SliceStable(population, func(i, j int) bool {
		return population[i].fitness.better(population[j].fitness)
	})
}

// initPopulation creates random permutations plus the greedy orders.
func (g *geneticArranger) initPopulation() []chromosome {
	n := len(g.items)
	population := make([]chromosome, g.config.PopulationSize)
	for i := range population {
		population[i] = chromosome{order: g.rng.Perm(n)}
	}

	seeds := []Strategy{StrategyAreaDesc, StrategyHeightDesc, StrategyInsertion}
	for i, s := range seeds {
		if i >= len(population) {
			break
		}
		population[i] = chromosome{order: orderItems(g.items, s)}
	}
	return population
}

func (g *geneticArranger) evaluate(c chromosome) fitness {
	a := replace(g.grid, g.items, c.order)
	return fitness{unplaced: len(a.Unplaced), extent: a.Extent(), height: a.Grid.Height}
}

func (g *geneticArranger) tournamentSelect(population []chromosome) chromosome {
	best := population[g.rng.Intn(len(population))]
	for i := 1; i < g.config.TournamentSize; i++ {
		candidate := population[g.rng.Intn(len(population))]
		if candidate.fitness.better(best.fitness) {
			best = candidate
		}
	}
	return copyChromosome(best)
}

// orderCrossover implements Order Crossover (OX1): a segment of parent1
// is kept in place and the rest is filled in parent2's relative order.
func (g *geneticArranger) orderCrossover(parent1, parent2 chromosome) chromosome {
	n := len(parent1.order)
	if n <= 2 {
		return copyChromosome(parent1)
	}

	point1 := g.rng.Intn(n)
	point2 := g.rng.Intn(n)
	if point1 > point2 {
		point1, point2 = point2, point1
	}

	child := chromosome{order: make([]int, n)}
	inSegment := make(map[int]bool, point2-point1+1)
	for i := point1; i <= point2; i++ {
		child.order[i] = parent1.order[i]
		inSegment[parent1.order[i]] = true
	}

	childIdx := (point2 + 1) % n
	for _, idx := range parent2.order {
		if !inSegment[idx] {
			child.order[childIdx] = idx
			childIdx = (childIdx + 1) % n
		}
	}
	return child
}

// mutate applies swap and inversion mutations.
func (g *geneticArranger) mutate(c *chromosome) {
	n := len(c.order)
	if n < 2 {
		return
	}

	if g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		c.order[i], c.order[j] = c.order[j], c.order[i]
	}

	// Inversion is rarer than a swap.
	if g.rng.Float64() < g.config.MutationRate*0.5 {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		if i > j {
			i, j = j, i
		}
		for i < j {
			c.order[i], c.order[j] = c.order[j], c.order[i]
			i++
			j--
		}
	}
}

func copyChromosome(c chromosome) chromosome {
	order := make([]int, len(c.order))
	copy(order, c.order)
	return chromosome{order: order, fitness: c.fitness}
}
