package router

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		want Route
	}{
		{"hi", RouteGreeting},
		{"  Hello!  ", RouteGreeting},
		{"Good Morning", RouteGreeting},
		{"hello doctor", RouteStructuredQuery},
		{"what can you do", RouteSystemInfo},
		{"what features do you have", RouteSystemInfo},
		{"summarise chapter 3 of the textbook", RouteFreeText},
		{"what does the uploaded pdf say about doctors", RouteFreeText},
		{"list all doctors", RouteStructuredQuery},
		{"when is the clinic open", RouteStructuredQuery},
		{"any slots on monday", RouteStructuredQuery},
		{"is there a holiday next week", RouteStructuredQuery},
		{"is anything available at 5:31", RouteStructuredQuery},
		{"when can I come at 10 am", RouteStructuredQuery},
		{"what is the full form of ECG", RouteFreeText},
		{"tell me about diabetes", RouteFreeText},
		{"", RouteFreeText},
	}

	for _, tc := range cases {
		if got := Classify(tc.text); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		if got := Classify("hey"); got != RouteGreeting {
			t.Fatalf("iteration %d: greeting classification drifted to %q", i, got)
		}
	}
}
