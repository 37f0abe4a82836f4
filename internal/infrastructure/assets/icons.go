// Package assets manages the local media directory: entity icons, the
// placeholder icon and the page backdrop.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/infrastructure/httpclient"
)

const (
	iconsDir        = "icons"
	placeholderIcon = "default.png"
	backdropImage   = "backdrop.jpg"

	heroRefPrefix = "npc_dota_hero_"
	itemRefPrefix = "item_"
)

// skippedItemPrefixes lists item keys that have no CDN icon.
var skippedItemPrefixes = []string{"recipe", "rivervial"}

// Icons implements ports.IconProvider on a media directory.
type Icons struct {
	http     *httpclient.Client
	iconURL  string
	mediaDir string
	logger   *zap.Logger
}

// NewIcons creates an icon provider. http may be nil when downloads are not
// needed.
func NewIcons(http *httpclient.Client, iconURL, mediaDir string, logger *zap.Logger) *Icons {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Icons{
		http:     http,
		iconURL:  strings.TrimRight(iconURL, "/"),
		mediaDir: mediaDir,
		logger:   logger,
	}
}

// IconPath returns the local path of the icon for key.
func (i *Icons) IconPath(key entities.CanonicalKey) string {
	return filepath.Join(i.mediaDir, iconsDir, string(key)+".png")
}

// FetchMissing downloads icons for every record without a local icon. Failed
// downloads are logged and skipped.
func (i *Icons) FetchMissing(ctx context.Context, heroes, items []entities.CatalogRecord) (int, error) {
	if i.http == nil {
		return 0, errors.New("icon downloads are not configured")
	}
	if err := os.MkdirAll(filepath.Join(i.mediaDir, iconsDir), 0755); err != nil {
		return 0, fmt.Errorf("creating icon directory: %w", err)
	}

	var jobs []iconJob
	for _, h := range heroes {
		jobs = append(jobs, iconJob{
			key: keyOf(h),
			url: fmt.Sprintf("%s/heroes/%s_lg.png", i.iconURL, strings.TrimPrefix(h.Name, heroRefPrefix)),
		})
	}
	for _, it := range items {
		key := keyOf(it)
		if skipItem(key) {
			continue
		}
		jobs = append(jobs, iconJob{
			key: key,
			url: fmt.Sprintf("%s/items/%s_lg.png", i.iconURL, strings.TrimPrefix(it.Name, itemRefPrefix)),
		})
	}

	fetched := 0
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return fetched, err
		}
		path := i.IconPath(job.key)
		if fileExists(path) {
			continue
		}
		if err := i.download(ctx, job.url, path); err != nil {
			if ctx.Err() != nil {
				return fetched, ctx.Err()
			}
			i.logger.Debug("icon download failed", zap.String("key", string(job.key)), zap.Error(err))
			continue
		}
		fetched++
	}

	i.logger.Info("icons fetched", zap.Int("downloaded", fetched), zap.Int("checked", len(jobs)))
	return fetched, nil
}

type iconJob struct {
	key entities.CanonicalKey
	url string
}

func (i *Icons) download(ctx context.Context, rawURL, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".icon-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := i.http.Download(ctx, rawURL, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// CopyIcons copies the icon for each key into dir as <key>.png, falling back
// to the placeholder. Keys with neither are skipped.
func (i *Icons) CopyIcons(dir string, keys []entities.CanonicalKey) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating image directory: %w", err)
	}

	placeholder := filepath.Join(i.mediaDir, placeholderIcon)
	for _, key := range keys {
		src := i.IconPath(key)
		if !fileExists(src) {
			src = placeholder
		}
		dst := filepath.Join(dir, string(key)+".png")
		err := copyFile(src, dst)
		if errors.Is(err, fs.ErrNotExist) {
			i.logger.Debug("no icon or placeholder", zap.String("key", string(key)))
			continue
		}
		if err != nil {
			return fmt.Errorf("copying icon %s: %w", key, err)
		}
	}
	return nil
}

// CopyBackdrop copies backdrop.jpg into dir when the media directory has one.
func (i *Icons) CopyBackdrop(dir string) (bool, error) {
	src := filepath.Join(i.mediaDir, backdropImage)
	if !fileExists(src) {
		return false, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("creating image directory: %w", err)
	}
	if err := copyFile(src, filepath.Join(dir, backdropImage)); err != nil {
		return false, fmt.Errorf("copying backdrop: %w", err)
	}
	return true, nil
}

func keyOf(rec entities.CatalogRecord) entities.CanonicalKey {
	if rec.Key != "" {
		return rec.Key
	}
	return entities.Sanitize(rec.DisplayName)
}

func skipItem(key entities.CanonicalKey) bool {
	for _, prefix := range skippedItemPrefixes {
		if strings.HasPrefix(string(key), prefix) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
