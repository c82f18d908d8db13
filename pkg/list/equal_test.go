package list

import (
	"strconv"
	"testing"

	"github.com/elves/linkedlist/pkg/tt"
)

func TestEqual(t *testing.T) {
	tt.Test(t, tt.Fn("Equal", Equal[int]), tt.Table{
		tt.Args(Of(1, 2, 3), Of(1, 2, 3)).Rets(true),
		tt.Args(New[int](), New[int]()).Rets(true),
		tt.Args((*List[int])(nil), New[int]()).Rets(true),
		tt.Args(Of(1, 2, 3), Of(1, 2)).Rets(false),
		tt.Args(Of(1, 2), Of(1, 2, 3)).Rets(false),
		tt.Args(Of(1, 2, 3), Of(1, 2, 4)).Rets(false),
		tt.Args(Of(1), New[int]()).Rets(false),
	})
}

func TestEqualFunc(t *testing.T) {
	eq := func(i int, s string) bool { return strconv.Itoa(i) == s }
	if !EqualFunc(Of(1, 2), Of("1", "2"), eq) {
		t.Errorf("EqualFunc -> false for matching elements")
	}
	if EqualFunc(Of(1, 2), Of("1", "3"), eq) {
		t.Errorf("EqualFunc -> true for mismatching elements")
	}
	called := false
	EqualFunc(Of(1), Of("1", "2"), func(int, string) bool {
		called = true
		return true
	})
	if called {
		t.Errorf("EqualFunc compared elements of lists with different lengths")
	}
}
