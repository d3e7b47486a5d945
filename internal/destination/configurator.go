package destination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ariel-frischer/pkgctl/internal/diagnostics"
	clierrors "github.com/ariel-frischer/pkgctl/internal/errors"
)

// Assignment sets one property to the given paths.
type Assignment struct {
	Property Property
	Values   []string
}

// Outcome describes what a Reset or Update changed.
type Outcome struct {
	Key Key
	// Properties names the affected properties in declaration order.
	// It is empty for a full reset.
	Properties []string
	// Found reports whether a record existed before the operation.
	Found bool
	// Full is true when the whole record was targeted.
	Full bool
}

// Configurator maps requested property changes onto a Store and reports
// exactly one diagnostic per successful call.
type Configurator struct {
	Store       Store
	Diagnostics diagnostics.Sink
	// DestinationsDir locates installed descriptors for Show. Optional.
	DestinationsDir string
}

// Reset clears the selected properties of key's record. With no selection
// the whole record is removed; a missing record is reported as a warning,
// not an error.
func (c *Configurator) Reset(key Key, selected []Property) (Outcome, error) {
	if err := key.Validate(); err != nil {
		return Outcome{}, clierrors.NewArgumentError(err.Error())
	}

	if len(selected) == 0 {
		return c.resetAll(key)
	}

	overrides, found, err := c.Store.Load(key)
	if err != nil {
		return Outcome{}, clierrors.StoreFailure(err, "read")
	}

	props := inDeclarationOrder(selected)
	for _, p := range props {
		p.Clear(&overrides)
	}

	if err := c.Store.Update(key, overrides); err != nil {
		return Outcome{}, clierrors.StoreFailure(err, "write")
	}

	outcome := Outcome{Key: key, Properties: names(props), Found: found}
	c.Diagnostics.Info(fmt.Sprintf("These properties of destination `%s` for target triple `%s` were successfully reset: %s.",
		key.DestinationID, key.TargetTriple, strings.Join(outcome.Properties, ", ")))
	return outcome, nil
}

func (c *Configurator) resetAll(key Key) (Outcome, error) {
	removed, err := c.Store.ResetAll(key)
	if err != nil {
		return Outcome{}, clierrors.StoreFailure(err, "reset")
	}

	outcome := Outcome{Key: key, Found: removed, Full: true}
	if !removed {
		c.Diagnostics.Warning(fmt.Sprintf("No configuration for destination `%s` with target triple `%s` found.",
			key.DestinationID, key.TargetTriple))
		return outcome, nil
	}

	c.Diagnostics.Info(fmt.Sprintf("All configuration properties of destination `%s` for target triple `%s` were successfully reset.",
		key.DestinationID, key.TargetTriple))
	return outcome, nil
}

// Update sets the assigned properties on key's record, creating it when
// absent. Properties that are not assigned keep their current state.
func (c *Configurator) Update(key Key, assignments []Assignment) (Outcome, error) {
	if err := key.Validate(); err != nil {
		return Outcome{}, clierrors.NewArgumentError(err.Error())
	}
	if len(assignments) == 0 {
		return Outcome{}, clierrors.NoPropertiesSelected()
	}

	overrides, found, err := c.Store.Load(key)
	if err != nil {
		return Outcome{}, clierrors.StoreFailure(err, "read")
	}

	selected := make([]Property, 0, len(assignments))
	for _, a := range assignments {
		a.Property.Set(&overrides, a.Values)
		selected = append(selected, a.Property)
	}

	if err := c.Store.Update(key, overrides); err != nil {
		return Outcome{}, clierrors.StoreFailure(err, "write")
	}

	outcome := Outcome{Key: key, Properties: names(inDeclarationOrder(selected)), Found: found}
	c.Diagnostics.Info(fmt.Sprintf("These properties of destination `%s` for target triple `%s` were successfully updated: %s.",
		key.DestinationID, key.TargetTriple, strings.Join(outcome.Properties, ", ")))
	return outcome, nil
}

// View is the stored and effective configuration of one key.
type View struct {
	Key       Key
	Overrides PathOverrides
	Found     bool
	// Effective is nil when the destination is not installed.
	Effective *PathOverrides
}

// Show returns key's stored overrides and, when the destination's descriptor
// is installed, the configuration that results from layering them on it.
func (c *Configurator) Show(key Key) (View, error) {
	if err := key.Validate(); err != nil {
		return View{}, clierrors.NewArgumentError(err.Error())
	}

	overrides, found, err := c.Store.Load(key)
	if err != nil {
		return View{}, clierrors.StoreFailure(err, "read")
	}
	view := View{Key: key, Overrides: overrides, Found: found}

	if c.DestinationsDir == "" {
		return view, nil
	}
	descriptor, err := LoadDescriptor(c.DestinationsDir, key.DestinationID)
	if err != nil {
		if errors.Is(err, ErrDescriptorNotFound) {
			return view, nil
		}
		return View{}, clierrors.WrapWithMessage(err, clierrors.Configuration, "invalid destination descriptor")
	}
	effective, err := descriptor.Effective(key.TargetTriple, overrides)
	if err != nil {
		return View{}, clierrors.NewConfigError(err.Error(),
			fmt.Sprintf("Check the target triples listed in %s", DescriptorPath(c.DestinationsDir, key.DestinationID)))
	}
	view.Effective = &effective
	return view, nil
}
