package mediaclient

import (
	"bytes"
	"io"
	"testing"
)

func TestProgressReader_ReportsEachPercentOnce(t *testing.T) {
	src := bytes.NewReader(make([]byte, 1000))

	var reported []int
	pr := newProgressReader(src, 1000, func(pct int) {
		reported = append(reported, pct)
	})

	buf := make([]byte, 100)
	for {
		if _, err := pr.Read(buf); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	want := []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	if len(reported) != len(want) {
		t.Fatalf("expected %v, got %v", want, reported)
	}
	for i := range want {
		if reported[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, reported)
		}
	}
}

func TestProgressReader_ClampsAt100(t *testing.T) {
	// reader delivers more bytes than the declared total
	src := bytes.NewReader(make([]byte, 150))

	last := -1
	pr := newProgressReader(src, 100, func(pct int) { last = pct })

	if _, err := io.Copy(io.Discard, pr); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if last != 100 {
		t.Errorf("expected progress to clamp at 100, got %d", last)
	}
}

func TestProgressReader_SmallReadsDoNotRepeatPercent(t *testing.T) {
	src := bytes.NewReader(make([]byte, 10))

	var reported []int
	pr := newProgressReader(src, 1000, func(pct int) {
		reported = append(reported, pct)
	})

	buf := make([]byte, 1)
	for {
		if _, err := pr.Read(buf); err == io.EOF {
			break
		}
	}

	// 10 of 1000 bytes is 1 percent; 0 then 1 are each reported once
	want := []int{0, 1}
	if len(reported) != len(want) || reported[0] != 0 || reported[1] != 1 {
		t.Fatalf("expected %v, got %v", want, reported)
	}
}
