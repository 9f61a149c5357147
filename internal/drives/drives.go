// Package drives enumerates mounted volumes and their capacity for the UI.
package drives

import (
	"context"

	"github.com/shirou/gopsutil/v4/disk"
)

// Drive describes one mounted volume.
type Drive struct {
	Name           string  `json:"name"`
	MountPoint     string  `json:"mount_point"`
	TotalSpace     uint64  `json:"total_space"`
	AvailableSpace uint64  `json:"available_space"`
	UsedSpace      uint64  `json:"used_space"`
	UsagePercent   float64 `json:"usage_percent"`
	FileSystem     string  `json:"file_system"`
	IsRemovable    bool    `json:"is_removable"`
}

// List returns the physical mounted volumes. Partitions whose usage cannot
// be read (stale mounts, permission) are skipped rather than failing the
// whole listing.
func List(ctx context.Context) ([]Drive, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, err
	}

	out := make([]Drive, 0, len(parts))
	for _, p := range parts {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			continue
		}

		var percent float64
		if usage.Total > 0 {
			percent = float64(usage.Used) / float64(usage.Total) * 100.0
		}

		out = append(out, Drive{
			Name:           p.Device,
			MountPoint:     p.Mountpoint,
			TotalSpace:     usage.Total,
			AvailableSpace: usage.Free,
			UsedSpace:      usage.Used,
			UsagePercent:   percent,
			FileSystem:     p.Fstype,
			IsRemovable:    isRemovable(p.Device),
		})
	}
	return out, nil
}
