package classify

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/models"
)

const (
	TableEfficiency      = "efficiency"
	TableBatteryIcon     = "battery_icon"
	TableBatteryColor    = "battery_color"
	TablePanelEfficiency = "panel_efficiency"
)

// EfficiencyTable is the 90/80 table used for efficiency, health and
// charge on the analytics, devices and battery health views.
var EfficiencyTable = Table{
	Name: TableEfficiency,
	Bands: []Band{
		{Min: 90, Tier: TierExcellent, Label: "Excellent", ColorKey: ColorGreen},
		{Min: 80, Tier: TierGood, Label: "Good", ColorKey: ColorAmber},
		{Tier: TierNeedsAttention, Label: "Needs Attention", ColorKey: ColorRed},
	},
}

// BatteryIconTable picks the battery icon: > 80 full, > 50 medium.
var BatteryIconTable = Table{
	Name: TableBatteryIcon,
	Bands: []Band{
		{Min: 80, Strict: true, Tier: TierFull, Label: "Full", ColorKey: ColorGreen},
		{Min: 50, Strict: true, Tier: TierMedium, Label: "Medium", ColorKey: ColorAmber},
		{Tier: TierLow, Label: "Low", ColorKey: ColorRed},
	},
}

// BatteryColorTable colors the charge gauge: > 70 green, > 30 amber.
var BatteryColorTable = Table{
	Name: TableBatteryColor,
	Bands: []Band{
		{Min: 70, Strict: true, Tier: TierExcellent, Label: "Excellent", ColorKey: ColorGreen},
		{Min: 30, Strict: true, Tier: TierGood, Label: "Good", ColorKey: ColorAmber},
		{Tier: TierLow, Label: "Low", ColorKey: ColorRed},
	},
}

// PanelEfficiencyTable is the strict 90/80 variant of the panel list and
// the battery health chart.
var PanelEfficiencyTable = Table{
	Name: TablePanelEfficiency,
	Bands: []Band{
		{Min: 90, Strict: true, Tier: TierExcellent, Label: "Excellent", ColorKey: ColorGreen},
		{Min: 80, Strict: true, Tier: TierGood, Label: "Good", ColorKey: ColorAmber},
		{Tier: TierNeedsAttention, Label: "Needs Attention", ColorKey: ColorRed},
	},
}

// Registry resolves threshold tables by name.
type Registry struct {
	tables map[string]Table
}

func DefaultRegistry() *Registry {
	r := &Registry{tables: map[string]Table{}}
	for _, t := range []Table{EfficiencyTable, BatteryIconTable, BatteryColorTable, PanelEfficiencyTable} {
		r.tables[t.Name] = t
	}
	return r
}

func (r *Registry) Get(name string) (Table, error) {
	t, ok := r.tables[name]
	if !ok {
		return Table{}, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return t, nil
}

// Names returns the registered table names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Classify(name string, value float64) (Result, error) {
	t, err := r.Get(name)
	if err != nil {
		return Result{}, err
	}
	return Classify(value, t)
}

type thresholdsFile struct {
	Tables []Table `yaml:"tables"`
}

// LoadRegistry starts from the built-in tables and overrides or adds the
// tables listed in the YAML file at path. An empty path returns the
// defaults.
func LoadRegistry(path string) (*Registry, error) {
	r := DefaultRegistry()
	if path == "" {
		return r, nil
	}

	logger := common.GetLoggerWith(common.LoggerNameClassifier)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read thresholds %s: %w", path, err)
	}

	var file thresholdsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse thresholds %s: %w", path, err)
	}

	for _, t := range file.Tables {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		_, replaced := r.tables[t.Name]
		r.tables[t.Name] = t
		logger.Info("Loaded threshold table",
			zap.String("table", t.Name),
			zap.Int("bands", len(t.Bands)),
			zap.Bool("replaced_default", replaced))
	}

	return r, nil
}

// Display holds the color keys an entity status renders with. Status
// tags are assigned on the entity, never derived from thresholds.
type Display struct {
	Status     models.Status `json:"status"`
	ColorKey   ColorKey      `json:"color"`
	Background ColorKey      `json:"background"`
}

func StatusDisplay(s models.Status) Display {
	switch s {
	case models.StatusOnline:
		return Display{Status: s, ColorKey: ColorGreen, Background: ColorGreen}
	case models.StatusWarning:
		return Display{Status: s, ColorKey: ColorAmber, Background: ColorAmber}
	case models.StatusError:
		return Display{Status: s, ColorKey: ColorRed, Background: ColorRed}
	default:
		return Display{Status: s, ColorKey: ColorGray, Background: ColorGray}
	}
}
