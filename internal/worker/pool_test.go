package worker_test

import (
	"testing"

	"github.com/prepquiz/backend/internal/worker"
)

func TestPool_RunsEverySubmittedJob(t *testing.T) {
	pool := worker.NewPool[int](3, 10)

	for i := 0; i < 10; i++ {
		i := i
		pool.Submit("job", func() int { return i * i })
	}

	seen := make(map[int]bool)
	for i := 0; i < 10; i++ {
		result := <-pool.Results()
		seen[result.Output] = true
	}

	for i := 0; i < 10; i++ {
		if !seen[i*i] {
			t.Errorf("missing output %d", i*i)
		}
	}
}

func TestPool_CloseDrainsAndClosesResults(t *testing.T) {
	pool := worker.NewPool[string](2, 4)
	pool.Submit("a", func() string { return "done" })
	pool.Submit("b", func() string { return "done" })
	pool.Close()

	count := 0
	for result := range pool.Results() {
		if result.Output != "done" {
			t.Errorf("unexpected output %q", result.Output)
		}
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 results, got %d", count)
	}
}
