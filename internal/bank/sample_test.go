package bank

import "testing"

func numberedQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:            QuestionID(string(rune('a' + i))),
			Question:      "q",
			Options:       map[string]string{"A": "x", "B": "y"},
			CorrectAnswer: "A",
		}
	}
	return qs
}

func TestSample_SizeAndUniqueness(t *testing.T) {
	qs := numberedQuestions(10)

	for i := 0; i < 50; i++ {
		got := Sample(qs, 4)
		if len(got) != 4 {
			t.Fatalf("expected 4 questions, got %d", len(got))
		}
		seen := make(map[QuestionID]bool)
		for _, q := range got {
			if seen[q.ID] {
				t.Fatalf("duplicate id %s in sample", q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestSample_IsSubsetOfBank(t *testing.T) {
	qs := numberedQuestions(8)
	inBank := make(map[QuestionID]bool)
	for _, q := range qs {
		inBank[q.ID] = true
	}

	for _, q := range Sample(qs, 3) {
		if !inBank[q.ID] {
			t.Fatalf("sampled id %s is not in the bank", q.ID)
		}
	}
}

func TestSample_OversizedReturnsFullSetInOrder(t *testing.T) {
	qs := numberedQuestions(3)

	for _, n := range []int{0, -1, 3, 10} {
		got := Sample(qs, n)
		if len(got) != 3 {
			t.Fatalf("n=%d: expected full set, got %d", n, len(got))
		}
		for i := range got {
			if got[i].ID != qs[i].ID {
				t.Fatalf("n=%d: expected original order, got %v", n, got)
			}
		}
	}
}

func TestSample_DoesNotModifyInput(t *testing.T) {
	qs := numberedQuestions(6)
	before := make([]QuestionID, len(qs))
	for i, q := range qs {
		before[i] = q.ID
	}

	Sample(qs, 2)
	Shuffle(qs)

	for i, q := range qs {
		if q.ID != before[i] {
			t.Fatalf("input slice was modified at %d: %s != %s", i, q.ID, before[i])
		}
	}
}
