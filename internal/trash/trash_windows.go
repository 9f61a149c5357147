//go:build windows

package trash

import (
	"fmt"
	"os/exec"
)

// platformDelete recycles the file through the VisualBasic FileIO shim,
// which routes the delete to the Recycle Bin the same way Explorer does.
func platformDelete(path string) error {
	script := `Add-Type -AssemblyName Microsoft.VisualBasic; [Microsoft.VisualBasic.FileIO.FileSystem]::DeleteFile($args[0], [Microsoft.VisualBasic.FileIO.UIOption]::OnlyErrorDialogs, [Microsoft.VisualBasic.FileIO.RecycleOption]::SendToRecycleBin)`
	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script, path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("recycle failed: %v: %s", err, out)
	}
	return nil
}
