// Package compare computes per-cell and grouped price differences between
// two premium series, either two years or two insurers.
package compare

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pavelnovac/rcahub/internal/domain"
)

// Series is one sparse price list keyed by cell id. A missing cell means
// "no quote" and diffs against it stay empty rather than reading as zero.
type Series map[string]float64

func CompanySeries(c *domain.Company) Series {
	s := make(Series, len(c.Premiums))
	for _, p := range c.Premiums {
		s[p.CellID] = p.Value
	}
	return s
}

// Diff is one price movement. Absolute is B minus A, so an increase is
// positive. Percentage is relative to A and stays nil when A is zero or
// either side is absent; it is never infinity.
type Diff struct {
	Absolute   *float64 `json:"absolute"`
	Percentage *float64 `json:"percentage"`
}

func DiffValues(a, b *float64) Diff {
	if a == nil || b == nil {
		return Diff{}
	}
	abs := *b - *a
	d := Diff{Absolute: &abs}
	if *a != 0 {
		pct := abs / *a * 100
		d.Percentage = &pct
	}
	return d
}

type CellDiff struct {
	CellID string   `json:"cell_id"`
	ValueA *float64 `json:"value_a"`
	ValueB *float64 `json:"value_b"`
	Diff
}

// DiffSeries diffs two series over cells, keeping cell order. Cells absent
// from both sides are still listed, with an empty diff.
func DiffSeries(cells []string, a, b Series) []CellDiff {
	diffs := make([]CellDiff, 0, len(cells))
	for _, cellID := range cells {
		var va, vb *float64
		if v, ok := a[cellID]; ok {
			v := v
			va = &v
		}
		if v, ok := b[cellID]; ok {
			v := v
			vb = &v
		}
		diffs = append(diffs, CellDiff{
			CellID: cellID,
			ValueA: va,
			ValueB: vb,
			Diff:   DiffValues(va, vb),
		})
	}
	return diffs
}

// GroupKey selects the dimension cell diffs are aggregated on.
type GroupKey string

const (
	GroupVehicleGroup        GroupKey = "vehicle_group"
	GroupPersonCategory      GroupKey = "person_category"
	GroupTerritory           GroupKey = "territory"
	GroupVehicleByTerritory  GroupKey = "vehicle_group_territory"
	GroupTerritoryByCategory GroupKey = "territory_person_category"
)

func GroupKeys() []GroupKey {
	return []GroupKey{
		GroupVehicleGroup,
		GroupPersonCategory,
		GroupTerritory,
		GroupVehicleByTerritory,
		GroupTerritoryByCategory,
	}
}

// groupLabel extracts the grouping label from a cell id. Vehicle and
// territory codes never contain underscores; person categories do, so the
// split is bounded at three parts.
func groupLabel(key GroupKey, cellID string) string {
	parts := strings.SplitN(cellID, "_", 3)
	if len(parts) != 3 {
		return cellID
	}
	vehicle, territory, person := parts[0], parts[1], parts[2]
	group := vehicle[:1]

	switch key {
	case GroupVehicleGroup:
		return group
	case GroupPersonCategory:
		return person
	case GroupTerritory:
		return territory
	case GroupVehicleByTerritory:
		return group + "_" + territory
	case GroupTerritoryByCategory:
		return territory + "_" + person
	default:
		return cellID
	}
}

// GroupStat is one aggregated row: how many cells moved within the group,
// by how much in total and on average.
type GroupStat struct {
	Key     string  `json:"key"`
	Count   int     `json:"count"`
	Total   float64 `json:"total_absolute"`
	Average float64 `json:"average_absolute"`
}

// Aggregate groups cell diffs by key and ranks groups by descending
// magnitude of total movement. Cells without a computable diff are
// skipped.
func Aggregate(diffs []CellDiff, key GroupKey) []GroupStat {
	type acc struct {
		count int
		total decimal.Decimal
	}
	byLabel := make(map[string]*acc)
	order := make([]string, 0)

	for _, d := range diffs {
		if d.Absolute == nil {
			continue
		}
		label := groupLabel(key, d.CellID)
		a, ok := byLabel[label]
		if !ok {
			a = &acc{}
			byLabel[label] = a
			order = append(order, label)
		}
		a.count++
		a.total = a.total.Add(decimal.NewFromFloat(*d.Absolute))
	}

	stats := make([]GroupStat, 0, len(order))
	for _, label := range order {
		a := byLabel[label]
		stats = append(stats, GroupStat{
			Key:     label,
			Count:   a.count,
			Total:   a.total.Round(2).InexactFloat64(),
			Average: a.total.Div(decimal.NewFromInt(int64(a.count))).Round(2).InexactFloat64(),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		ti, tj := stats[i].Total, stats[j].Total
		if ti < 0 {
			ti = -ti
		}
		if tj < 0 {
			tj = -tj
		}
		if ti != tj {
			return ti > tj
		}
		return stats[i].Key < stats[j].Key
	})

	return stats
}
