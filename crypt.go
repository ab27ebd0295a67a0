package docproc

import (
	"errors"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/sirupsen/logrus"

	"github.com/porticus-lab/go-docproc/internal/fsutil"
)

// Encrypt writes a password-protected copy of path to out using AES-256.
// Opening the result requires userPW; ownerPW grants full permissions and
// defaults to userPW when empty.
func (e *Engine) Encrypt(path, out, userPW, ownerPW string) (string, error) {
	const op = "encrypt"
	if userPW == "" {
		return "", invalidf(op, "user password is empty")
	}
	if ownerPW == "" {
		ownerPW = userPW
	}
	if _, err := e.probe(op, path); err != nil {
		return "", err
	}

	err := e.produce(op, out, func(tmp string) error {
		conf := e.cfg.pdfConfig()
		conf.UserPW = userPW
		conf.OwnerPW = ownerPW
		conf.EncryptUsingAES = true
		conf.EncryptKeyLength = 256
		return api.EncryptFile(path, tmp, conf)
	})
	if err != nil {
		return "", err
	}
	e.logOp(op, path, logrus.Fields{"out": out})
	return out, nil
}

// Decrypt writes an unprotected copy of path to out. A PDF that is not
// encrypted is copied unchanged. A wrong password fails with a permission
// error and leaves out untouched.
func (e *Engine) Decrypt(path, out, password string) (string, error) {
	const op = "decrypt"
	if _, err := e.stat(op, path); err != nil {
		return "", err
	}

	ctx, err := e.readContext(path, password)
	if err != nil {
		if isPasswordError(err) {
			return "", newError(op, path, KindPermission, errors.New("wrong password"))
		}
		return "", newError(op, path, KindFormat, err)
	}
	encrypted := ctx.Encrypt != nil

	err = e.produce(op, out, func(tmp string) error {
		if !encrypted {
			return fsutil.CopyFile(path, tmp)
		}
		conf := e.cfg.pdfConfig()
		conf.UserPW = password
		conf.OwnerPW = password
		return api.DecryptFile(path, tmp, conf)
	})
	if err != nil {
		return "", err
	}
	e.logOp(op, path, logrus.Fields{"out": out, "was_encrypted": encrypted})
	return out, nil
}
