package config

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase_BuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		database Database
		contains []string
		wantErr  bool
	}{
		{
			name:     "postgres",
			database: Database{Driver: DriverPostgres, User: "u", Password: "p", URL: "localhost:5432/kpi"},
			contains: []string{"postgres://u:p@localhost:5432/kpi", "sslmode=disable"},
		},
		{
			name:     "driver vazio usa postgres",
			database: Database{User: "u", Password: "p", URL: "db:5432/kpi"},
			contains: []string{"postgres://u:p@db:5432/kpi"},
		},
		{
			name:     "mysql",
			database: Database{Driver: DriverMySQL, User: "u", Password: "p", URL: "db.example:3306/kpi"},
			contains: []string{"u:p@tcp(db.example:3306)/kpi", "parseTime=true"},
		},
		{
			name:     "mysql sem banco",
			database: Database{Driver: DriverMySQL, User: "u", Password: "p", URL: "db.example:3306"},
			wantErr:  true,
		},
		{
			name:     "driver desconhecido",
			database: Database{Driver: "oracle", URL: "x"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := tt.database.BuildDSN()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			for _, c := range tt.contains {
				assert.Contains(t, dsn, c)
			}
		})
	}
}

func TestDatabase_BuildDSN_EscapesPostgresCredentials(t *testing.T) {
	database := Database{Driver: DriverPostgres, User: "kpi@app", Password: "p@ss/w:rd?#", URL: "db:5432/kpi"}

	dsn, err := database.BuildDSN()
	require.NoError(t, err)

	parsed, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "kpi@app", parsed.User.Username())
	password, _ := parsed.User.Password()
	assert.Equal(t, "p@ss/w:rd?#", password)
	assert.Equal(t, "db:5432", parsed.Host)
	assert.Equal(t, "/kpi", parsed.Path)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
}

func writeTargets(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "targets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadKPITargets(t *testing.T) {
	t.Run("caminho vazio devolve padrão", func(t *testing.T) {
		targets, err := LoadKPITargets("")
		require.NoError(t, err)
		assert.Equal(t, DefaultKPITargets(), targets)
	})

	t.Run("arquivo completo", func(t *testing.T) {
		path := writeTargets(t, t.TempDir(), `
late_delivery_days: 3.5
recent_unit_cost_months: 6
goals:
  availability_pct: 90
  service_level_pct: 95
`)
		targets, err := LoadKPITargets(path)
		require.NoError(t, err)
		assert.Equal(t, 3.5, targets.LateDeliveryDays)
		assert.Equal(t, 6, targets.RecentUnitCostMonths)
		assert.Equal(t, map[string]float64{"availability_pct": 90, "service_level_pct": 95}, targets.Goals)
	})

	t.Run("campos ausentes recebem padrão", func(t *testing.T) {
		path := writeTargets(t, t.TempDir(), "goals:\n  margin_pct: 35\n")
		targets, err := LoadKPITargets(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultLateDeliveryDays, targets.LateDeliveryDays)
		assert.Equal(t, DefaultRecentUnitCostMonths, targets.RecentUnitCostMonths)
		assert.Equal(t, 35.0, targets.Goals["margin_pct"])
	})

	t.Run("yaml inválido", func(t *testing.T) {
		path := writeTargets(t, t.TempDir(), "goals: [nao, e, mapa")
		_, err := LoadKPITargets(path)
		assert.Error(t, err)
	})

	t.Run("arquivo inexistente", func(t *testing.T) {
		_, err := LoadKPITargets(filepath.Join(t.TempDir(), "nao-existe.yaml"))
		assert.Error(t, err)
	})
}

func TestTargetStore_CurrentReturnsCopy(t *testing.T) {
	store := NewTargetStore(KPITargets{LateDeliveryDays: 4, Goals: map[string]float64{"margin_pct": 30}})

	current := store.Current()
	current.Goals["margin_pct"] = 99

	assert.Equal(t, 30.0, store.Current().Goals["margin_pct"])

	store.Set(KPITargets{LateDeliveryDays: 2})
	assert.Equal(t, 2.0, store.Current().LateDeliveryDays)
	assert.NotNil(t, store.Current().Goals)
}

func TestWatchKPITargets_ReloadsOnWrite(t *testing.T) {
	path := writeTargets(t, t.TempDir(), "late_delivery_days: 4\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan KPITargets, 10)
	done := make(chan error, 1)
	go func() {
		done <- WatchKPITargets(ctx, path, func(k KPITargets) { changes <- k })
	}()

	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case got := <-changes:
			// Uma escrita pode ser observada pela metade (arquivo truncado)
			if got.LateDeliveryDays != 7 {
				continue
			}
			cancel()
			require.NoError(t, <-done)
			return
		case <-ticker.C:
			// O observador pode ainda não ter registrado o arquivo
			require.NoError(t, os.WriteFile(path, []byte("late_delivery_days: 7\n"), 0o644))
		case <-deadline:
			t.Fatal("timeout esperando recarga do arquivo de metas")
		}
	}
}

func TestWatchKPITargets_ReloadsOnAtomicRename(t *testing.T) {
	dir := t.TempDir()
	path := writeTargets(t, dir, "late_delivery_days: 4\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan KPITargets, 10)
	done := make(chan error, 1)
	go func() {
		done <- WatchKPITargets(ctx, path, func(k KPITargets) { changes <- k })
	}()

	// Editores salvam escrevendo um temporário e renomeando por cima do original
	save := func(days string) {
		tmp := filepath.Join(dir, "targets.yaml.tmp")
		require.NoError(t, os.WriteFile(tmp, []byte("late_delivery_days: "+days+"\n"), 0o644))
		require.NoError(t, os.Rename(tmp, path))
	}

	waitFor := func(want float64, days string) {
		deadline := time.After(5 * time.Second)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case got := <-changes:
				if got.LateDeliveryDays == want {
					return
				}
			case <-ticker.C:
				save(days)
			case <-deadline:
				t.Fatalf("timeout esperando late_delivery_days=%v após rename", want)
			}
		}
	}

	// Dois salvamentos seguidos: o segundo só funciona se a observação sobreviver ao primeiro rename
	waitFor(7, "7")
	waitFor(9, "9")

	cancel()
	require.NoError(t, <-done)
}

func TestIsTargetsChange(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "targets.yaml")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{name: "escrita no arquivo", event: fsnotify.Event{Name: target, Op: fsnotify.Write}, want: true},
		{name: "rename por cima do arquivo", event: fsnotify.Event{Name: target, Op: fsnotify.Create}, want: true},
		{name: "outro arquivo do diretório", event: fsnotify.Event{Name: filepath.Join(dir, "outro.yaml"), Op: fsnotify.Write}, want: false},
		{name: "temporário renomeado", event: fsnotify.Event{Name: target + ".tmp", Op: fsnotify.Rename}, want: false},
		{name: "remoção", event: fsnotify.Event{Name: target, Op: fsnotify.Remove}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTargetsChange(tt.event, target))
		})
	}
}
