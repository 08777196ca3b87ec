package seed

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"math/rand"

	"github.com/hereisramji/atlas/internal/domain"
	"github.com/hereisramji/atlas/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config generator knobs. The ratios are demo defaults with no clinical
// grounding; treat them as configuration, not domain truth.
type Config struct {
	// ResponderRatio is the Bernoulli probability that a generated patient
	// is a responder
	ResponderRatio float64

	// PositivityRate is the probability that a per-cell marker measurement
	// falls in the positive intensity range (extended variant)
	PositivityRate float64

	// BatchSize bounds peak memory during bulk inserts; any size that
	// completes is acceptable
	BatchSize int

	// PerCell enables the extended variant with individual cell records
	PerCell bool

	// CellsPerPopulation caps the sampled cells per population
	CellsPerPopulation int
}

// DefaultConfig returns the demo defaults.
func DefaultConfig() Config {
	return Config{
		ResponderRatio:     0.3,
		PositivityRate:     0.8,
		BatchSize:          1000,
		PerCell:            false,
		CellsPerPopulation: 100,
	}
}

// Repositories the storage surface the seeder writes through.
type Repositories struct {
	Cohorts     repository.CohortsRepository
	Patients    repository.PatientsRepository
	Specimens   repository.SpecimensRepository
	Populations repository.CellPopulationsRepository
	Cells       repository.CellsRepository
	Markers     repository.MarkersRepository
	Timepoints  repository.TimepointsRepository
	Aggregates  repository.AggregatesRepository
}

// Seeder populates an empty store with an internally consistent synthetic
// dataset exercising every downstream query path. The random source is
// injected so generation is reproducible in tests.
type Seeder struct {
	repos  Repositories
	rng    *rand.Rand
	cfg    Config
	logger *zap.Logger

	// id counters, entities carry explicit primary keys
	nextPatientID    int64
	nextSpecimenID   int64
	nextPopulationID int64
	nextCellID       int64
	nextCellMarkerID int64

	// marker ids by category, filled while seeding the catalog
	markerIDsByCategory map[string][]int64
}

// New creates a seeder.
func New(repos Repositories, rng *rand.Rand, cfg Config, logger *zap.Logger) *Seeder {
	return &Seeder{
		repos:               repos,
		rng:                 rng,
		cfg:                 cfg,
		logger:              logger,
		nextPatientID:       1,
		nextSpecimenID:      1,
		nextPopulationID:    1,
		nextCellID:          1,
		nextCellMarkerID:    1,
		markerIDsByCategory: map[string][]int64{},
	}
}

// Seed populates the store with synthetic data only if it is empty;
// otherwise it is a no-op, so repeated startup never duplicates data.
func (s *Seeder) Seed(ctx context.Context) error {
	count, err := s.repos.Cohorts.CountCohorts(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if count > 0 {
		s.logger.Info("store already seeded", zap.Int("cohorts", count))
		return nil
	}

	if err := s.repos.Timepoints.InsertTimepoints(ctx, timepointCatalog); err != nil {
		return err
	}
	if err := s.seedMarkers(ctx); err != nil {
		return err
	}
	if err := s.repos.Cohorts.InsertCohorts(ctx, cohortCatalog); err != nil {
		return err
	}

	patients, err := s.seedPatients(ctx)
	if err != nil {
		return err
	}
	specimens, err := s.seedSpecimens(ctx, patients)
	if err != nil {
		return err
	}
	if err := s.seedPopulations(ctx, specimens); err != nil {
		return err
	}
	if err := s.seedMarkerData(ctx); err != nil {
		return err
	}
	if err := s.seedCellTypeData(ctx); err != nil {
		return err
	}

	s.logger.Info("sample data loaded",
		zap.Int("cohorts", len(cohortCatalog)),
		zap.Int("patients", len(patients)),
		zap.Int("specimens", len(specimens)),
		zap.Bool("per_cell", s.cfg.PerCell))
	return nil
}

func (s *Seeder) seedMarkers(ctx context.Context) error {
	markers := []domain.Marker{}
	var markerID int64 = 1
	for _, category := range markerCategories {
		for _, name := range category.Markers {
			markers = append(markers, domain.Marker{
				MarkerID:    markerID,
				Name:        name,
				Category:    category.Name,
				Description: markerDescriptions[name],
			})
			s.markerIDsByCategory[category.Name] = append(s.markerIDsByCategory[category.Name], markerID)
			markerID++
		}
	}
	return s.repos.Markers.InsertMarkers(ctx, markers)
}

func (s *Seeder) seedPatients(ctx context.Context) ([]domain.Patient, error) {
	patients := []domain.Patient{}
	for _, cohort := range cohortCatalog {
		for i := 0; i < cohort.PatientsCount; i++ {
			patients = append(patients, domain.Patient{
				PatientID: s.nextPatientID,
				CohortID:  cohort.CohortID,
				Responder: s.rng.Float64() < s.cfg.ResponderRatio,
			})
			s.nextPatientID++
		}
	}

	for _, batch := range chunk(patients, s.cfg.BatchSize) {
		if err := s.repos.Patients.InsertPatients(ctx, batch); err != nil {
			return nil, err
		}
	}
	return patients, nil
}

func (s *Seeder) seedSpecimens(ctx context.Context, patients []domain.Patient) ([]domain.Specimen, error) {
	specimens := []domain.Specimen{}
	for _, patient := range patients {
		// 2-5 specimens per patient at distinct timepoints.
		numSpecimens := 2 + s.rng.Intn(4)
		for _, idx := range s.rng.Perm(len(timepointCatalog))[:numSpecimens] {
			drugClass := drugClasses[s.rng.Intn(len(drugClasses))]
			specimens = append(specimens, domain.Specimen{
				SpecimenID:   s.nextSpecimenID,
				PatientID:    patient.PatientID,
				Accession:    s.newAccession(),
				Timepoint:    timepointCatalog[idx].Name,
				SpecimenType: specimenTypes[s.rng.Intn(len(specimenTypes))],
				DrugClass:    sql.NullString{String: drugClass, Valid: drugClass != ""},
			})
			s.nextSpecimenID++
		}
	}

	for _, batch := range chunk(specimens, s.cfg.BatchSize) {
		if err := s.repos.Specimens.InsertSpecimens(ctx, batch); err != nil {
			return nil, err
		}
	}
	return specimens, nil
}

func (s *Seeder) seedPopulations(ctx context.Context, specimens []domain.Specimen) error {
	populations := []domain.CellPopulation{}
	for _, specimen := range specimens {
		totalCells := 100000 + s.rng.Intn(900000)
		remaining := 100.0

		for i, cellType := range populationCellTypes {
			var percentage float64
			if i == len(populationCellTypes)-1 {
				// Last cell type takes the exact remainder so the
				// specimen sums to 100.0.
				percentage = remaining
			} else {
				maxPct := remaining * 0.8
				if maxPct > 50 {
					maxPct = 50
				}
				percentage = 0.5 + s.rng.Float64()*(maxPct-0.5)
				if percentage > remaining {
					percentage = remaining
				}
				remaining -= percentage
			}

			population := domain.CellPopulation{
				PopulationID: s.nextPopulationID,
				SpecimenID:   specimen.SpecimenID,
				CellType:     cellType,
				CellCount:    int64(math.Round(percentage / 100 * float64(totalCells))),
				Percentage:   percentage,
			}
			s.nextPopulationID++
			populations = append(populations, population)
		}
	}

	// All populations land before any cells referencing them; cells carry
	// a foreign key back to cell_populations.
	for _, batch := range chunk(populations, s.cfg.BatchSize) {
		if err := s.repos.Populations.InsertPopulations(ctx, batch); err != nil {
			return err
		}
	}

	if !s.cfg.PerCell {
		return nil
	}
	for _, population := range populations {
		if err := s.seedCells(ctx, population); err != nil {
			return err
		}
	}
	return nil
}

// seedCells generates the capped per-cell sample for one population
// (extended variant). Each cell gets one measurement per marker relevant to
// its cell type: a high intensity with the configured positivity
// probability, a low one otherwise, with a matching boolean call.
func (s *Seeder) seedCells(ctx context.Context, population domain.CellPopulation) error {
	numCells := s.cfg.CellsPerPopulation
	if int64(numCells) > population.CellCount {
		numCells = int(population.CellCount)
	}

	markerIDs := []int64{}
	for _, category := range markerRelevance[population.CellType] {
		markerIDs = append(markerIDs, s.markerIDsByCategory[category]...)
	}

	cells := make([]domain.Cell, 0, numCells)
	measurements := make([]domain.CellMarker, 0, numCells*len(markerIDs))
	for i := 0; i < numCells; i++ {
		cell := domain.Cell{CellID: s.nextCellID, PopulationID: population.PopulationID}
		s.nextCellID++
		cells = append(cells, cell)

		for _, markerID := range markerIDs {
			positive := s.rng.Float64() < s.cfg.PositivityRate
			var intensity float64
			if positive {
				intensity = 5000 + s.rng.Float64()*5000
			} else {
				intensity = 50 + s.rng.Float64()*950
			}
			measurements = append(measurements, domain.CellMarker{
				ID:        s.nextCellMarkerID,
				CellID:    cell.CellID,
				MarkerID:  markerID,
				Intensity: intensity,
				Positive:  positive,
			})
			s.nextCellMarkerID++
		}
	}

	// Cells before their measurements, the FK points upward.
	if err := s.repos.Cells.InsertCells(ctx, cells); err != nil {
		return err
	}
	for _, batch := range chunk(measurements, s.cfg.BatchSize) {
		if err := s.repos.Cells.InsertCellMarkers(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

// seedMarkerData builds a category-shaped random-walk expression series per
// (cohort, marker): checkpoint molecules drift down in responders,
// activation markers drift up, T cell markers drift mildly up, everything
// else wanders.
func (s *Seeder) seedMarkerData(ctx context.Context) error {
	markers, err := s.repos.Markers.ListMarkers(ctx)
	if err != nil {
		return err
	}

	data := []domain.MarkerData{}
	var dataID int64 = 1

	for _, cohort := range cohortCatalog {
		for _, marker := range markers {
			var responderBase, nonResponderBase float64
			var responderDir, nonResponderDir float64

			switch marker.Category {
			case "Checkpoint Molecules":
				responderBase = s.uniform(0.3, 0.5)
				nonResponderBase = s.uniform(0.4, 0.6)
				responderDir, nonResponderDir = -1, 1
			case "Activation Markers":
				responderBase = s.uniform(0.1, 0.3)
				nonResponderBase = s.uniform(0.1, 0.3)
				responderDir, nonResponderDir = 1, -0.2
			case "T Cell Markers":
				responderBase = s.uniform(0.2, 0.4)
				nonResponderBase = s.uniform(0.2, 0.4)
				responderDir, nonResponderDir = 0.5, -0.2
			default:
				responderBase = s.uniform(0.2, 0.4)
				nonResponderBase = responderBase
				responderDir = float64(1 - 2*s.rng.Intn(2))
				nonResponderDir = responderDir * s.uniform(-0.5, 0.5)
			}

			responderValue := responderBase
			nonResponderValue := nonResponderBase

			for i, timepoint := range timepointCatalog {
				if i > 0 {
					// Changes get more pronounced at later timepoints.
					timeFactor := float64(i) / float64(len(timepointCatalog))
					responderValue += responderDir*s.uniform(0.05, 0.15)*timeFactor + s.uniform(-0.02, 0.02)
					nonResponderValue += nonResponderDir*s.uniform(0.02, 0.08)*timeFactor + s.uniform(-0.02, 0.02)
					responderValue = clamp(responderValue, 0.01, 0.99)
					nonResponderValue = clamp(nonResponderValue, 0.01, 0.99)
				}

				data = append(data, domain.MarkerData{
					ID:                dataID,
					CohortID:          cohort.CohortID,
					MarkerID:          marker.MarkerID,
					TimepointID:       timepoint.TimepointID,
					ResponderValue:    responderValue,
					NonResponderValue: nonResponderValue,
				})
				dataID++
			}
		}
	}

	for _, batch := range chunk(data, s.cfg.BatchSize) {
		if err := s.repos.Aggregates.InsertMarkerData(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

// seedCellTypeData applies the per-indication frequency pattern, jittered
// per cohort so sibling cohorts do not render identical charts.
func (s *Seeder) seedCellTypeData(ctx context.Context) error {
	data := []domain.CellTypeData{}
	var dataID int64 = 1

	for _, cohort := range cohortCatalog {
		pattern, ok := frequencyPatterns[cohort.Indication]
		if !ok {
			pattern = frequencyPatterns["Melanoma"]
		}

		for i, cellType := range frequencyCellTypes {
			data = append(data, domain.CellTypeData{
				ID:                    dataID,
				CohortID:              cohort.CohortID,
				CellType:              cellType,
				ResponderFrequency:    clamp(pattern.Responders[i]+s.uniform(-0.02, 0.02), 0.01, 0.99),
				NonResponderFrequency: clamp(pattern.NonResponders[i]+s.uniform(-0.02, 0.02), 0.01, 0.99),
			})
			dataID++
		}
	}

	for _, batch := range chunk(data, s.cfg.BatchSize) {
		if err := s.repos.Aggregates.InsertCellTypeData(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

// newAccession derives the accession UUID from the injected random source
// so seeded datasets are fully reproducible.
func (s *Seeder) newAccession() string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		// rand.Rand's Read never fails; fall back to the global source.
		return uuid.NewString()
	}
	return id.String()
}

func (s *Seeder) uniform(low, high float64) float64 {
	return low + s.rng.Float64()*(high-low)
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// chunk splits items into batches of at most size elements.
func chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		return [][]T{items}
	}
	batches := [][]T{}
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}
