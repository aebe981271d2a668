package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLateDeliveryDays     = 4.0
	DefaultRecentUnitCostMonths = 4
)

// KPITargets são os limites e metas lidos do arquivo YAML de indicadores
type KPITargets struct {
	LateDeliveryDays     float64            `yaml:"late_delivery_days"`
	RecentUnitCostMonths int                `yaml:"recent_unit_cost_months"`
	Goals                map[string]float64 `yaml:"goals"` // Meta por indicador, ex: availability_pct: 90
}

func DefaultKPITargets() KPITargets {
	return KPITargets{
		LateDeliveryDays:     DefaultLateDeliveryDays,
		RecentUnitCostMonths: DefaultRecentUnitCostMonths,
		Goals:                map[string]float64{},
	}
}

// LoadKPITargets lê o arquivo de metas. Caminho vazio devolve os valores padrão.
func LoadKPITargets(path string) (KPITargets, error) {
	targets := DefaultKPITargets()
	if path == "" {
		return targets, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return targets, fmt.Errorf("erro ao ler arquivo de metas %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &targets); err != nil {
		return targets, fmt.Errorf("erro ao interpretar arquivo de metas %s: %w", path, err)
	}

	if targets.LateDeliveryDays <= 0 {
		targets.LateDeliveryDays = DefaultLateDeliveryDays
	}
	if targets.RecentUnitCostMonths <= 0 {
		targets.RecentUnitCostMonths = DefaultRecentUnitCostMonths
	}
	if targets.Goals == nil {
		targets.Goals = map[string]float64{}
	}

	return targets, nil
}

// TargetStore guarda as metas atuais e permite trocá-las durante a execução
type TargetStore struct {
	mu      sync.RWMutex
	targets KPITargets
}

func NewTargetStore(initial KPITargets) *TargetStore {
	return &TargetStore{targets: initial}
}

func (s *TargetStore) Current() KPITargets {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make(map[string]float64, len(s.targets.Goals))
	for k, v := range s.targets.Goals {
		goals[k] = v
	}

	current := s.targets
	current.Goals = goals
	return current
}

func (s *TargetStore) Set(targets KPITargets) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targets = targets
}
