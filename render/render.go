package render

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"ilpload/facts"
	"ilpload/ilp"
)

// Facts renders ground atoms as a fact file the parser reads back unchanged.
func Facts(atoms []facts.GroundAtom) string {
	out, err := TemplateToString(factsTemplate, atomStrings(atoms))
	if err != nil {
		panic(err)
	}
	return out
}

// WriteDir writes the problem as bk.pl, pos.pl and neg.pl under dir.
func WriteDir(dir string, p *ilp.Problem) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export %s: %w", p.Name, err)
	}
	files := []struct {
		name  string
		atoms []facts.GroundAtom
	}{
		{ilp.BackgroundFile, p.Background},
		{ilp.PositiveFile, p.Positive},
		{ilp.NegativeFile, p.Negative},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), []byte(Facts(f.atoms)), 0o644); err != nil {
			return fmt.Errorf("export %s: %w", p.Name, err)
		}
	}
	return nil
}

func Summary(p *ilp.Problem, t *ilp.ProgramTemplate) (string, error) {
	components, err := ilp.ConstantComponents(p)
	if err != nil {
		return "", err
	}
	groups := make([][]string, len(components))
	for i, c := range components {
		groups[i] = atomStrings(c)
	}
	return TemplateToString(summaryTemplate, struct {
		Document   *Document
		Components [][]string
	}{NewDocument(p, t), groups})
}

func YAML(p *ilp.Problem, t *ilp.ProgramTemplate) ([]byte, error) {
	return yaml.Marshal(NewDocument(p, t))
}

var (
	plainAtomRe   = regexp.MustCompile(`^[a-z][a-zA-Z0-9_]*$`)
	plainNumberRe = regexp.MustCompile(`^(0|[1-9][0-9]*)(\.[0-9]+)?$`)
)

// Term writes a token as a Prolog term. Tokens that Prolog would read as a
// variable or could not read at all are single-quoted atoms.
func Term(token string) string {
	if plainAtomRe.MatchString(token) || plainNumberRe.MatchString(token) {
		return token
	}
	return "'" + token + "'"
}

// PrologAtom rewrites a canonical ground atom with Prolog quoting.
func PrologAtom(atom facts.GroundAtom) (string, error) {
	pred, err := facts.ParseGroundAtom(string(atom))
	if err != nil {
		return "", err
	}
	return prologPredicate(pred), nil
}

func prologPredicate(pred facts.Predicate) string {
	args := make([]string, len(pred.Args))
	for i, a := range pred.Args {
		args[i] = Term(a)
	}
	return Term(pred.Name) + "(" + joinStr(args, "", ",") + ")"
}

// Program renders a consultable Prolog program: every predicate of the
// problem declared dynamic, the background grouped by predicate, then the
// hypothesis clauses verbatim.
func Program(p *ilp.Problem, t *ilp.ProgramTemplate, hypothesis string) (string, error) {
	sigs := []facts.Signature{p.Language.Target}
	sigs = append(sigs, p.Language.Extensional...)
	if t != nil {
		sigs = append(sigs, t.Auxiliary...)
	}
	seen := make(map[facts.Signature]bool)
	dynamic := make([]string, 0, len(sigs))
	for _, s := range sigs {
		if !seen[s] {
			seen[s] = true
			dynamic = append(dynamic, fmt.Sprintf("%s/%d", Term(s.Name), s.Arity))
		}
	}

	grouped := make(map[facts.Signature][]string)
	order := make([]facts.Signature, 0)
	parser := facts.NewParser()
	for _, atom := range p.Background {
		pred, err := parser.ParseGroundAtom(string(atom))
		if err != nil {
			return "", err
		}
		sig := pred.Signature()
		if _, ok := grouped[sig]; !ok {
			order = append(order, sig)
		}
		grouped[sig] = append(grouped[sig], prologPredicate(pred))
	}
	background := make([]string, 0, len(p.Background))
	for _, sig := range order {
		background = append(background, grouped[sig]...)
	}

	return TemplateToString(programTemplate, struct {
		Dynamic    []string
		Background []string
		Hypothesis string
	}{dynamic, background, hypothesis})
}
