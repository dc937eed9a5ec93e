package parser

import (
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/releaseforge/domain"
)

// The alternate manifest format. Repositories are one top-level sequence:
//
//	repositories:
//	  - name: example
//	    version: 1.2.3
//	    git_tag: v1.2.3
//	    requires:
//	      - other
//	      - pinned=1.0.0
const (
	keyRepositories = "repositories"
	keyName         = "name"
	keyVersion      = "version"
	keyGitTag       = "git_tag"
	keyRequires     = "requires"
)

// YAMLCodec reads and writes manifests in the alternate YAML format. It
// walks the decoded node tree instead of unmarshalling into structs so
// that structural errors carry line numbers.
type YAMLCodec struct{}

// NewYAMLCodec creates the YAML manifest codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

var _ Codec = (*YAMLCodec)(nil)

func (c *YAMLCodec) Format() Format { return FormatYAML }

// Parse decodes manifest text with the same contract as the HCL codec:
// *domain.SyntaxError for malformed text, *domain.DuplicateEntryError for
// a repository defined twice, and no resolution of requirement targets or
// version strings.
func (c *YAMLCodec) Parse(text string) (*domain.Manifest, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, &domain.SyntaxError{Line: yamlErrorLine(err), Detail: err.Error()}
	}

	doc := documentContent(&root)
	if doc == nil {
		return domain.NewManifest(nil)
	}
	if doc.Kind != yaml.MappingNode {
		return nil, &domain.SyntaxError{
			Line:   doc.Line,
			Detail: "manifest root must be a mapping",
		}
	}

	var entries []domain.Entry
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		if key.Value != keyRepositories {
			return nil, &domain.SyntaxError{
				Line:   key.Line,
				Detail: fmt.Sprintf("unsupported key %q", key.Value),
			}
		}
		items, err := sequenceItems(value)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			entry, itemErr := decodeRepositoryItem(item)
			if itemErr != nil {
				return nil, itemErr
			}
			entries = append(entries, entry)
		}
	}

	return domain.NewManifest(entries)
}

// documentContent unwraps the document node, returning nil for an empty
// or null document.
func documentContent(root *yaml.Node) *yaml.Node {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	doc := root.Content[0]
	if doc.Kind == yaml.ScalarNode && doc.Tag == "!!null" {
		return nil
	}
	return doc
}

// sequenceItems returns the items of a sequence node, treating null as an
// empty sequence.
func sequenceItems(node *yaml.Node) ([]*yaml.Node, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, &domain.SyntaxError{
			Line:   node.Line,
			Detail: fmt.Sprintf("%q must be a sequence", keyRepositories),
		}
	}
	return node.Content, nil
}

func decodeRepositoryItem(item *yaml.Node) (domain.Entry, error) {
	if item.Kind != yaml.MappingNode {
		return domain.Entry{}, &domain.SyntaxError{
			Line:   item.Line,
			Detail: "repository must be a mapping",
		}
	}

	var entry domain.Entry
	seen := make(map[string]bool)
	for i := 0; i+1 < len(item.Content); i += 2 {
		key, value := item.Content[i], item.Content[i+1]
		if seen[key.Value] {
			return domain.Entry{}, &domain.SyntaxError{
				Line:   key.Line,
				Detail: fmt.Sprintf("duplicate key %q", key.Value),
			}
		}
		seen[key.Value] = true

		switch key.Value {
		case keyName:
			name, err := scalarValue(key.Value, value)
			if err != nil {
				return domain.Entry{}, err
			}
			entry.Name = name
		case keyVersion:
			version, err := scalarValue(key.Value, value)
			if err != nil {
				return domain.Entry{}, err
			}
			entry.Version = version
		case keyGitTag:
			tag, err := scalarValue(key.Value, value)
			if err != nil {
				return domain.Entry{}, err
			}
			entry.GitTag = tag
		case keyRequires:
			requires, err := decodeRequires(value)
			if err != nil {
				return domain.Entry{}, err
			}
			entry.Requires = requires
		default:
			return domain.Entry{}, &domain.SyntaxError{
				Line:   key.Line,
				Detail: fmt.Sprintf("unsupported key %q", key.Value),
			}
		}
	}

	if !seen[keyName] {
		return domain.Entry{}, &domain.SyntaxError{
			Line:   item.Line,
			Detail: fmt.Sprintf("repository is missing %q", keyName),
		}
	}
	if !seen[keyVersion] {
		return domain.Entry{}, &domain.SyntaxError{
			Line:   item.Line,
			Detail: fmt.Sprintf("repository %q is missing %q", entry.Name, keyVersion),
		}
	}
	return entry, nil
}

func decodeRequires(node *yaml.Node) ([]domain.Requirement, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, &domain.SyntaxError{
			Line:   node.Line,
			Detail: fmt.Sprintf("%q must be a sequence of strings", keyRequires),
		}
	}

	var requires []domain.Requirement
	for _, item := range node.Content {
		ref, err := scalarValue(keyRequires, item)
		if err != nil {
			return nil, err
		}
		req, refErr := domain.ParseRequirementRef(ref)
		if refErr != nil {
			return nil, &domain.SyntaxError{Line: item.Line, Detail: refErr.Error()}
		}
		requires = append(requires, req)
	}
	return requires, nil
}

// scalarValue returns the literal text of a scalar node, so a value such
// as 1.2 stays "1.2" for the version checks instead of becoming a float.
func scalarValue(key string, node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return "", &domain.SyntaxError{
			Line:   node.Line,
			Detail: fmt.Sprintf("%q must be a scalar", key),
		}
	}
	return node.Value, nil
}

// Serialize renders the manifest in declaration order. Optional fields are
// omitted when empty, so output re-parses into an equal manifest.
func (c *YAMLCodec) Serialize(manifest *domain.Manifest) (string, error) {
	if manifest == nil {
		return "", fmt.Errorf("cannot serialize a nil manifest")
	}

	doc := yamlManifest{Repositories: make([]yamlRepository, 0, manifest.Len())}
	for _, entry := range manifest.Entries() {
		repo := yamlRepository{
			Name:    entry.Name,
			Version: entry.Version,
			GitTag:  entry.GitTag,
		}
		for _, req := range entry.Requires {
			repo.Requires = append(repo.Requires, req.String())
		}
		doc.Repositories = append(doc.Repositories, repo)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render YAML manifest: %w", err)
	}
	return string(out), nil
}

type yamlManifest struct {
	Repositories []yamlRepository `yaml:"repositories"`
}

type yamlRepository struct {
	Name     string   `yaml:"name"`
	Version  string   `yaml:"version"`
	GitTag   string   `yaml:"git_tag,omitempty"`
	Requires []string `yaml:"requires,omitempty"`
}

var yamlLinePattern = regexp.MustCompile(`line (\d+):`)

// yamlErrorLine pulls the line number out of a yaml parse error, which the
// library only exposes through its message. Zero means unknown.
func yamlErrorLine(err error) int {
	match := yamlLinePattern.FindStringSubmatch(err.Error())
	if match == nil {
		return 0
	}
	line, convErr := strconv.Atoi(match[1])
	if convErr != nil {
		return 0
	}
	return line
}
