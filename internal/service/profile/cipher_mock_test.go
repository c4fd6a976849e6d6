package profile

import (
	"sync"
)

var _ cipher = &cipherMock{}

type cipherMock struct {
	EncryptFunc func(plaintext string) (string, error)
	DecryptFunc func(ciphertext string) (string, error)

	calls struct {
		Encrypt []struct {
			Plaintext string
		}
		Decrypt []struct {
			Ciphertext string
		}
	}
	lockEncrypt sync.RWMutex
	lockDecrypt sync.RWMutex
}

func (mock *cipherMock) Encrypt(plaintext string) (string, error) {
	if mock.EncryptFunc == nil {
		panic("cipherMock.EncryptFunc: method is nil but cipher.Encrypt was just called")
	}
	callInfo := struct{ Plaintext string }{Plaintext: plaintext}
	mock.lockEncrypt.Lock()
	mock.calls.Encrypt = append(mock.calls.Encrypt, callInfo)
	mock.lockEncrypt.Unlock()
	return mock.EncryptFunc(plaintext)
}

func (mock *cipherMock) EncryptCalls() []struct{ Plaintext string } {
	mock.lockEncrypt.RLock()
	calls := mock.calls.Encrypt
	mock.lockEncrypt.RUnlock()
	return calls
}

func (mock *cipherMock) Decrypt(ciphertext string) (string, error) {
	if mock.DecryptFunc == nil {
		panic("cipherMock.DecryptFunc: method is nil but cipher.Decrypt was just called")
	}
	callInfo := struct{ Ciphertext string }{Ciphertext: ciphertext}
	mock.lockDecrypt.Lock()
	mock.calls.Decrypt = append(mock.calls.Decrypt, callInfo)
	mock.lockDecrypt.Unlock()
	return mock.DecryptFunc(ciphertext)
}

func (mock *cipherMock) DecryptCalls() []struct{ Ciphertext string } {
	mock.lockDecrypt.RLock()
	calls := mock.calls.Decrypt
	mock.lockDecrypt.RUnlock()
	return calls
}
