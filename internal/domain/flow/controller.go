package flow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ganot/lumina/internal/domain/asset"
	"github.com/ganot/lumina/internal/domain/concept"
)

// AssetGenerator runs generation for one slot of one concept.
type AssetGenerator interface {
	Generate(ctx context.Context, projectID, conceptID string, slot asset.Slot) error
}

// Controller walks one concept through the reveal sequence. Moving
// forward is gated on the current step's asset being ready; moving
// backward is always allowed. Entering a step whose asset was never
// requested triggers generation in the background.
type Controller struct {
	store     asset.Store
	generator AssetGenerator
	logger    *slog.Logger

	projectID string

	mu        sync.Mutex
	conceptID string
	stepIndex int
	inFlight  map[asset.Slot]bool
}

// NewController creates a Controller positioned at the first step.
func NewController(store asset.Store, generator AssetGenerator, projectID, conceptID string, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		store:     store,
		generator: generator,
		logger:    logger,
		projectID: projectID,
		conceptID: conceptID,
		inFlight:  make(map[asset.Slot]bool),
	}
}

// Start triggers generation for the first step if needed. Call once
// after construction.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.triggerLocked(ctx)
}

// Step returns the current step.
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Steps[c.stepIndex]
}

// Progress returns the current position and total step count.
func (c *Controller) Progress() (current, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stepIndex + 1, len(Steps)
}

// CanProceed reports whether the current step's gate is satisfied.
func (c *Controller) CanProceed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gateLocked()
}

// Next advances one step. The current step's asset must be ready.
func (c *Controller) Next(ctx context.Context) (Step, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stepIndex >= len(Steps)-1 {
		return Steps[c.stepIndex], ErrAtBoundary
	}
	if !c.gateLocked() {
		return Steps[c.stepIndex], fmt.Errorf("%w: %s", ErrStepNotReady, Steps[c.stepIndex].ID)
	}

	c.stepIndex++
	c.triggerLocked(ctx)
	return Steps[c.stepIndex], nil
}

// Prev moves back one step. Never gated.
func (c *Controller) Prev() (Step, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stepIndex == 0 {
		return Steps[0], ErrAtBoundary
	}
	c.stepIndex--
	return Steps[c.stepIndex], nil
}

// Goto jumps to the named step. Backward jumps are always allowed;
// forward jumps are gated on the current step only, like Next.
func (c *Controller) Goto(ctx context.Context, stepID string) (Step, error) {
	target := StepIndex(stepID)
	if target < 0 {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownStep, stepID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if target <= c.stepIndex {
		c.stepIndex = target
		return Steps[target], nil
	}

	if !c.gateLocked() {
		return Steps[c.stepIndex], fmt.Errorf("%w: %s", ErrStepNotReady, Steps[c.stepIndex].ID)
	}

	c.stepIndex = target
	c.triggerLocked(ctx)
	return Steps[target], nil
}

// SelectConcept switches to another concept and resets to the first
// step.
func (c *Controller) SelectConcept(ctx context.Context, conceptID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conceptID = conceptID
	c.stepIndex = 0
	c.triggerLocked(ctx)
}

func (c *Controller) gateLocked() bool {
	_, state, err := c.store.View(c.projectID, c.conceptID)
	if err != nil {
		c.logger.Error("reading concept state for gate", "concept_id", c.conceptID, "error", err)
		return false
	}
	return stepReady(Steps[c.stepIndex], state)
}

// stepReady evaluates a step's gate against concept state. Hero steps
// need a usable image and mockups need at least one recorded result;
// every other step, the social step included, is always passable.
func stepReady(step Step, state *concept.BrandConcept) bool {
	switch step.Slot {
	case asset.SlotLogo:
		return state.LogoURL != nil && state.LogoURL.Ready()
	case asset.SlotMoodBoard:
		return state.MoodBoardURL != nil && state.MoodBoardURL.Ready()
	case asset.SlotMockups:
		return len(state.Mockups) > 0
	}
	return true
}

// triggerLocked starts background generation for the current step's slot
// when the asset was never requested. At most one generation per slot
// runs at a time.
func (c *Controller) triggerLocked(ctx context.Context) {
	step := Steps[c.stepIndex]
	if step.Slot == "" || c.inFlight[step.Slot] {
		return
	}

	_, state, err := c.store.View(c.projectID, c.conceptID)
	if err != nil {
		c.logger.Error("reading concept state for trigger", "concept_id", c.conceptID, "error", err)
		return
	}
	if !slotAbsent(step.Slot, state) {
		return
	}

	c.inFlight[step.Slot] = true
	conceptID := c.conceptID
	go func() {
		defer func() {
			c.mu.Lock()
			delete(c.inFlight, step.Slot)
			c.mu.Unlock()
		}()
		if err := c.generator.Generate(ctx, c.projectID, conceptID, step.Slot); err != nil {
			c.logger.Error("background generation failed",
				"concept_id", conceptID, "slot", step.Slot, "error", err)
		}
	}()
}

// slotAbsent reports whether a slot was never requested. Failed slots
// are not absent: regeneration is an explicit user action. An empty
// mapping counts as absent; stored concepts may carry one.
func slotAbsent(slot asset.Slot, state *concept.BrandConcept) bool {
	switch slot {
	case asset.SlotLogo:
		return state.LogoURL == nil
	case asset.SlotMoodBoard:
		return state.MoodBoardURL == nil
	case asset.SlotMockups:
		return len(state.Mockups) == 0
	case asset.SlotSocial:
		return len(state.CampaignAssets) == 0 && len(state.Campaigns) > 0
	}
	return false
}
