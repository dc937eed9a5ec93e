package parser

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/releaseforge/domain"
)

// The canonical manifest format. Each repository is one labeled block:
//
//	repository "name" {
//	  version  = "1.2.3"
//	  git_tag  = "v1.2.3"
//	  requires = ["other", "pinned=1.0.0"]
//	}
//
// git_tag and requires are optional. Comments and whitespace are free.
const (
	blockRepository = "repository"
	attrVersion     = "version"
	attrGitTag      = "git_tag"
	attrRequires    = "requires"
)

var manifestSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockRepository, LabelNames: []string{"name"}},
	},
}

var repositorySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: attrVersion, Required: true},
		{Name: attrGitTag},
		{Name: attrRequires},
	},
}

// HCLCodec reads and writes manifests in the canonical HCL format.
type HCLCodec struct{}

// NewHCLCodec creates the canonical manifest codec.
func NewHCLCodec() *HCLCodec {
	return &HCLCodec{}
}

var _ Codec = (*HCLCodec)(nil)

func (c *HCLCodec) Format() Format { return FormatHCL }

// Parse decodes manifest text. Malformed text fails with
// *domain.SyntaxError carrying the offending line; a repository defined
// twice fails with *domain.DuplicateEntryError. Requirement targets and
// version strings are not resolved here; validation owns those checks.
func (c *HCLCodec) Parse(text string) (*domain.Manifest, error) {
	file, diags := hclparse.NewParser().ParseHCL([]byte(text), "manifest.hcl")
	if diags.HasErrors() {
		return nil, syntaxError(diags)
	}

	bodyContent, diags := file.Body.Content(manifestSchema)
	if diags.HasErrors() {
		return nil, syntaxError(diags)
	}

	entries := make([]domain.Entry, 0, len(bodyContent.Blocks))
	for _, block := range bodyContent.Blocks {
		entry, err := decodeRepositoryBlock(block)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return domain.NewManifest(entries)
}

func decodeRepositoryBlock(block *hcl.Block) (domain.Entry, error) {
	entry := domain.Entry{Name: block.Labels[0]}

	content, diags := block.Body.Content(repositorySchema)
	if diags.HasErrors() {
		return domain.Entry{}, syntaxError(diags)
	}

	version, err := stringAttr(content.Attributes[attrVersion])
	if err != nil {
		return domain.Entry{}, err
	}
	entry.Version = version

	if attr, ok := content.Attributes[attrGitTag]; ok {
		tag, tagErr := stringAttr(attr)
		if tagErr != nil {
			return domain.Entry{}, tagErr
		}
		entry.GitTag = tag
	}

	if attr, ok := content.Attributes[attrRequires]; ok {
		requires, requiresErr := requirementsAttr(attr)
		if requiresErr != nil {
			return domain.Entry{}, requiresErr
		}
		entry.Requires = requires
	}

	return entry, nil
}

func stringAttr(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() {
		return "", syntaxError(diags)
	}
	if val.IsNull() || val.Type() != cty.String {
		return "", &domain.SyntaxError{
			Line:   attr.Expr.Range().Start.Line,
			Detail: fmt.Sprintf("attribute %q must be a string", attr.Name),
		}
	}
	return val.AsString(), nil
}

func requirementsAttr(attr *hcl.Attribute) ([]domain.Requirement, error) {
	val, diags := attr.Expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() {
		return nil, syntaxError(diags)
	}
	if val.IsNull() || !val.CanIterateElements() {
		return nil, &domain.SyntaxError{
			Line:   attr.Expr.Range().Start.Line,
			Detail: fmt.Sprintf("attribute %q must be a list of strings", attr.Name),
		}
	}

	var requires []domain.Requirement
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.IsNull() || elem.Type() != cty.String {
			return nil, &domain.SyntaxError{
				Line:   attr.Expr.Range().Start.Line,
				Detail: fmt.Sprintf("attribute %q must contain only strings", attr.Name),
			}
		}
		req, err := domain.ParseRequirementRef(elem.AsString())
		if err != nil {
			return nil, &domain.SyntaxError{
				Line:   attr.Expr.Range().Start.Line,
				Detail: err.Error(),
			}
		}
		requires = append(requires, req)
	}
	return requires, nil
}

// Serialize renders the manifest in declaration order. Optional attributes
// are written only when set, so output re-parses into an equal manifest.
func (c *HCLCodec) Serialize(manifest *domain.Manifest) (string, error) {
	if manifest == nil {
		return "", fmt.Errorf("cannot serialize a nil manifest")
	}

	file := hclwrite.NewEmptyFile()
	root := file.Body()
	for i, entry := range manifest.Entries() {
		if i > 0 {
			root.AppendNewline()
		}
		body := root.AppendNewBlock(blockRepository, []string{entry.Name}).Body()
		body.SetAttributeValue(attrVersion, cty.StringVal(entry.Version))
		if entry.GitTag != "" {
			body.SetAttributeValue(attrGitTag, cty.StringVal(entry.GitTag))
		}
		if len(entry.Requires) > 0 {
			refs := make([]cty.Value, 0, len(entry.Requires))
			for _, req := range entry.Requires {
				refs = append(refs, cty.StringVal(req.String()))
			}
			body.SetAttributeValue(attrRequires, cty.ListVal(refs))
		}
	}
	return string(file.Bytes()), nil
}

// syntaxError converts HCL diagnostics into the domain's syntax error,
// keeping the first error's position.
func syntaxError(diags hcl.Diagnostics) *domain.SyntaxError {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		detail := diag.Summary
		if diag.Detail != "" {
			detail = diag.Summary + ": " + diag.Detail
		}
		return &domain.SyntaxError{Line: line, Detail: detail}
	}
	return &domain.SyntaxError{Detail: diags.Error()}
}
