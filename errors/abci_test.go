package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	std := fmt.Errorf("disk on fire")

	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"success": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"registered error": {
			err:      ErrNotFound,
			wantCode: ErrNotFound.ABCICode(),
			wantLog:  "not found",
		},
		"wrapped registered error keeps the message": {
			err:      Wrap(Wrapf(ErrNotFound, "wallet %d", 1), "send"),
			wantCode: ErrNotFound.ABCICode(),
			wantLog:  "send: wallet 1: not found",
		},
		"internal error is redacted": {
			err:      Wrap(std, "write"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"recovered panic": {
			err:      Wrap(ErrPanic, "runtime error: index out of range"),
			wantCode: ErrPanic.ABCICode(),
			wantLog:  "runtime error: index out of range: panic",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestABCIInfoDebug(t *testing.T) {
	code, log := ABCIInfo(Wrap(fmt.Errorf("disk on fire"), "write"), true)
	if code != internalABCICode {
		t.Fatalf("want internal code, got %d", code)
	}
	if !strings.Contains(log, "disk on fire") || !strings.Contains(log, "abci_test.go") {
		t.Fatalf("debug log must carry the message and the stack trace: %s", log)
	}
}

func TestABCIError(t *testing.T) {
	code, log := ABCIInfo(Wrap(ErrUnauthorized, "signer"), false)
	err := ABCIError(code, log)
	if !ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}
	if !strings.Contains(err.Error(), "signer") {
		t.Fatalf("log lost: %s", err)
	}

	err = ABCIError(987654, "who knows")
	if code, _ := ABCIInfo(err, false); code != internalABCICode {
		t.Fatalf("unknown code must be reported as internal, got %d", code)
	}
	if ABCIError(internalABCICode, "internal").Error() == "" {
		t.Fatal("internal code must produce an error")
	}
}
