package application

import (
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releaseforge/domain"
	parserPkg "github.com/rios0rios0/releaseforge/parser"
)

// ResolveService orchestrates the full manifest resolution flow:
// decode text -> validate everything -> derive the build order.
type ResolveService struct {
	registry *parserPkg.Registry
}

// NewResolveService creates a new service with the given codec registry.
func NewResolveService(registry *parserPkg.Registry) *ResolveService {
	return &ResolveService{
		registry: registry,
	}
}

// ResolveOptions holds runtime options for a single resolution.
type ResolveOptions struct {
	Format  parserPkg.Format // If empty, the canonical HCL format is used
	Verbose bool
}

// ReleasePlan is the outcome of resolving one manifest. Order and Tiers
// are only set when the report has no errors; callers must treat a
// non-empty Report.Errors as a hard stop.
type ReleasePlan struct {
	Manifest *domain.Manifest
	Report   domain.ValidationResult
	Order    domain.BuildOrder
	Tiers    [][]string
}

// Resolve parses the manifest text, validates it, and, when the manifest
// is sound, attaches the build order and its parallel tiers. Text that
// cannot be parsed fails with an error; validation findings never do, they
// ride inside the plan's report.
func (s *ResolveService) Resolve(text string, opts ResolveOptions) (*ReleasePlan, error) {
	codec, err := s.codec(opts)
	if err != nil {
		return nil, err
	}

	manifest, err := codec.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	logger.Debugf("Parsed %d entries from %s manifest", manifest.Len(), codec.Format())

	plan := &ReleasePlan{
		Manifest: manifest,
		Report:   manifest.Validate(),
	}
	if !plan.Report.IsValid() {
		logger.Infof(
			"Resolution complete: %d entries, %d errors, %d warnings",
			manifest.Len(), len(plan.Report.Errors), len(plan.Report.Warnings),
		)
		return plan, nil
	}

	order, orderErr := manifest.BuildOrder()
	if orderErr != nil {
		return nil, fmt.Errorf("failed to derive build order: %w", orderErr)
	}
	tiers, tiersErr := manifest.BuildTiers()
	if tiersErr != nil {
		return nil, fmt.Errorf("failed to derive build tiers: %w", tiersErr)
	}
	plan.Order = order
	plan.Tiers = tiers

	logger.Infof(
		"Resolution complete: %d entries ordered into %d tiers, %d warnings",
		manifest.Len(), len(tiers), len(plan.Report.Warnings),
	)
	return plan, nil
}

// Render serializes a manifest back into text, for callers that patch
// entries and write the result somewhere.
func (s *ResolveService) Render(manifest *domain.Manifest, opts ResolveOptions) (string, error) {
	codec, err := s.codec(opts)
	if err != nil {
		return "", err
	}
	return codec.Serialize(manifest)
}

func (s *ResolveService) codec(opts ResolveOptions) (parserPkg.Codec, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	format := opts.Format
	if format == "" {
		format = parserPkg.FormatHCL
	}

	codec := s.registry.Get(format)
	if codec == nil {
		return nil, fmt.Errorf("no codec registered for format %q", format)
	}
	return codec, nil
}
