package render

import (
	"bufio"
	"os"
	"path/filepath"
)

// WriteFile encodes a to path. The GIF is written to a temporary file in the
// same directory and renamed into place, so a failed write leaves nothing
// behind.
func WriteFile(path string, a *Animator) (err error) {
	if a.Len() == 0 {
		return renderErr("write", -1, ErrNoFrames)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return renderErr("write", -1, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = a.Encode(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return renderErr("write", -1, err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return renderErr("write", -1, err)
	}
	if err = tmp.Close(); err != nil {
		return renderErr("write", -1, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return renderErr("write", -1, err)
	}
	return nil
}
