package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// WatchKPITargets recarrega o arquivo de metas quando ele muda e chama onChange com o novo valor.
// O diretório é observado, e não o arquivo, para que salvar via rename (arquivo temporário
// renomeado por cima) continue sendo percebido. Se a leitura falhar as metas anteriores
// continuam valendo. Roda até o ctx ser cancelado.
func WatchKPITargets(ctx context.Context, path string, onChange func(KPITargets)) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	target = filepath.Clean(target)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	logger := logrus.WithField("path", target)
	logger.Info("Observando alterações no arquivo de metas")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isTargetsChange(event, target) {
				continue
			}

			targets, err := LoadKPITargets(target)
			if err != nil {
				logger.WithError(err).Error("Falha ao recarregar metas, mantendo as anteriores")
				continue
			}

			logger.Info("Arquivo de metas recarregado")
			onChange(targets)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logrus.WithError(err).Error("Erro no observador do arquivo de metas")
		}
	}
}

// isTargetsChange filtra os eventos do diretório que deixam o arquivo de metas com conteúdo novo
func isTargetsChange(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || filepath.Clean(name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
