package valueobject

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidMixRatio is returned when a mix ratio has a non-positive part or cannot be parsed.
var ErrInvalidMixRatio = errors.New("invalid mix ratio")

// MixRatio is the volumetric ratio of Part A (resin) to Part B (hardener).
type MixRatio struct {
	// PartA is the resin share.
	PartA int `json:"part_a"`

	// PartB is the hardener share.
	PartB int `json:"part_b"`
}

// OneToOne is the ratio most table top and deep pour epoxies use.
var OneToOne = MixRatio{PartA: 1, PartB: 1}

// MaxMixRatioPart is the largest share either part may have.
const MaxMixRatioPart = 1000

// NewMixRatio creates a validated MixRatio.
//
// Parameters:
//   - partA: resin share (1 to MaxMixRatioPart)
//   - partB: hardener share (1 to MaxMixRatioPart)
//
// Returns:
//   - MixRatio: the validated ratio
//   - error: ErrInvalidMixRatio if either part is out of range
func NewMixRatio(partA, partB int) (MixRatio, error) {
	if partA <= 0 || partB <= 0 {
		return MixRatio{}, fmt.Errorf("%w: parts must be positive, got %d:%d", ErrInvalidMixRatio, partA, partB)
	}
	if partA > MaxMixRatioPart || partB > MaxMixRatioPart {
		return MixRatio{}, fmt.Errorf("%w: parts must not exceed %d, got %d:%d", ErrInvalidMixRatio, MaxMixRatioPart, partA, partB)
	}
	return MixRatio{PartA: partA, PartB: partB}, nil
}

// ParseMixRatio parses a ratio written as "A:B" (e.g., "1:1", "2:1").
// An empty string yields the 1:1 ratio.
//
// Parameters:
//   - s: ratio text
//
// Returns:
//   - MixRatio: the parsed ratio
//   - error: ErrInvalidMixRatio if the text is malformed
func ParseMixRatio(s string) (MixRatio, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OneToOne, nil
	}

	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return MixRatio{}, fmt.Errorf("%w: %q is not in A:B form", ErrInvalidMixRatio, s)
	}

	partA, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return MixRatio{}, fmt.Errorf("%w: %q", ErrInvalidMixRatio, s)
	}
	partB, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return MixRatio{}, fmt.Errorf("%w: %q", ErrInvalidMixRatio, s)
	}

	return NewMixRatio(partA, partB)
}

// String returns the ratio label (e.g., "1:1").
func (r MixRatio) String() string {
	return fmt.Sprintf("%d:%d", r.PartA, r.PartB)
}

// IsZero reports whether the ratio was never set.
func (r MixRatio) IsZero() bool {
	return r.PartA == 0 && r.PartB == 0
}

// Split divides a total volume between Part A and Part B according to the ratio.
// For 1:1 both parts are exactly half the total.
//
// Parameters:
//   - total: the margined mix volume
//
// Returns:
//   - float64: Part A volume
//   - float64: Part B volume
func (r MixRatio) Split(total float64) (float64, float64) {
	if r == OneToOne || r.IsZero() {
		half := total / 2
		return half, half
	}

	parts := float64(r.PartA) + float64(r.PartB)
	partA := total * float64(r.PartA) / parts

	// Part B takes the remainder so the two always add back to the total
	return partA, total - partA
}

// MixRecommendation is the per-part quantity a user has to measure out.
type MixRecommendation struct {
	// Ratio is the label of the ratio used (e.g., "1:1").
	Ratio string `json:"ratio"`

	// PartAOunces is the resin quantity in fluid ounces.
	PartAOunces float64 `json:"part_a_ounces"`

	// PartBOunces is the hardener quantity in fluid ounces.
	PartBOunces float64 `json:"part_b_ounces"`
}

// SplitMix builds a MixRecommendation from the margined ounce total.
//
// Parameters:
//   - marginedOunces: total mix volume including margin
//   - ratio: Part A to Part B ratio
//
// Returns:
//   - MixRecommendation: the split quantities
func SplitMix(marginedOunces float64, ratio MixRatio) MixRecommendation {
	if ratio.IsZero() {
		ratio = OneToOne
	}
	partA, partB := ratio.Split(marginedOunces)
	return MixRecommendation{
		Ratio:       ratio.String(),
		PartAOunces: partA,
		PartBOunces: partB,
	}
}
