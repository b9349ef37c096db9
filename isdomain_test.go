package isdomain_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tbckr/isdomain"
	"github.com/tbckr/isdomain/internal/apperr"
)

func TestIsDomain_Scenarios(t *testing.T) {
	valid := []string{"http://localhost.com", "https://www.localhost.com:9000", "example.com", "sub.domain.co.uk", "a.b", "localhost"}
	invalid := []string{"http://localhost", "hyphen-.com", "-hyphen.com", "inva.lid!", strings.Repeat("a", 64) + ".com", ""}

	for _, s := range valid {
		assert.True(t, isdomain.IsDomain(s), "%q should be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, isdomain.IsDomain(s), "%q should be invalid", s)
	}
	assert.False(t, isdomain.IsDomainValue(123))
}

func TestIsDomain_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, isdomain.IsDomain("www.example.com"))
				assert.False(t, isdomain.IsDomain("www.-example.com"))
			}
		}()
	}
	wg.Wait()
}

func TestDiagnose_WrapsInvalidInput(t *testing.T) {
	err := isdomain.Diagnose("example")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Contains(t, err.Error(), "no dot")
	assert.NoError(t, isdomain.Diagnose("example.com"))
}
