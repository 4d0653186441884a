package rules

// Dedupe drops every stub whose title was already seen, keeping the first
// occurrence and the input order.
func Dedupe(stubs []TaskStub) []TaskStub {
	seen := make(map[string]struct{}, len(stubs))
	out := make([]TaskStub, 0, len(stubs))
	for _, stub := range stubs {
		if _, ok := seen[stub.Title]; ok {
			continue
		}
		seen[stub.Title] = struct{}{}
		out = append(out, stub)
	}
	return out
}
