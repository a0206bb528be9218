package validator

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"blog-cms/internal/domain"
)

// MinPasswordLength is the shortest password accepted at login and signup.
const MinPasswordLength = 6

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validator provides validation methods for request payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePost validates a post create or update payload. The slug must
// already be filled in; see Slugify.
func (v *Validator) ValidatePost(p *domain.PostInput) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(1, 255).Error("title_too_long"),
		),
		validation.Field(&p.Slug,
			validation.Required.Error("slug_required"),
			validation.RuneLength(1, 255).Error("slug_too_long"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&p.ShortDescription,
			validation.RuneLength(0, 500).Error("short_description_too_long"),
		),
		validation.Field(&p.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&p.ThumbnailURL,
			is.URL.Error("invalid_thumbnail_url"),
		),
		validation.Field(&p.Status,
			validation.Required.Error("status_required"),
			validation.By(postStatusRule),
		),
		validation.Field(&p.CategoryIDs, validation.Each(validation.Min(int64(1)).Error("invalid_category_id"))),
		validation.Field(&p.TagIDs, validation.Each(validation.Min(int64(1)).Error("invalid_tag_id"))),
	)
}

// ValidateComment validates a public comment payload.
func (v *Validator) ValidateComment(c *domain.CommentInput) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.AuthorName,
			validation.Required.Error("author_name_required"),
			validation.RuneLength(1, 100).Error("author_name_too_long"),
		),
		validation.Field(&c.AuthorEmail,
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&c.Content,
			validation.Required.Error("content_required"),
			validation.RuneLength(1, 1000).Error("content_too_long"),
		),
	)
}

// ValidateContact validates a contact form submission.
func (v *Validator) ValidateContact(m *domain.ContactMessage) error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Name,
			validation.Required.Error("name_required"),
			validation.RuneLength(1, 100).Error("name_too_long"),
		),
		validation.Field(&m.Email,
			validation.Required.Error("email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&m.Subject,
			validation.Required.Error("subject_required"),
			validation.RuneLength(1, 200).Error("subject_too_long"),
		),
		validation.Field(&m.MessageBody,
			validation.Required.Error("message_required"),
			validation.RuneLength(1, 2000).Error("message_too_long"),
		),
	)
}

// ValidateCredentials validates a login attempt.
func (v *Validator) ValidateCredentials(c *domain.Credentials) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Email,
			validation.Required.Error("email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&c.Password,
			validation.Required.Error("password_required"),
			validation.RuneLength(MinPasswordLength, 0).Error("password_too_short"),
		),
	)
}

// ValidateTaxonomy validates a category or tag payload.
func (v *Validator) ValidateTaxonomy(t *domain.TaxonomyInput) error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Name,
			validation.Required.Error("name_required"),
			validation.RuneLength(1, 100).Error("name_too_long"),
		),
		validation.Field(&t.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&t.Description,
			validation.RuneLength(0, 500).Error("description_too_long"),
		),
	)
}

// ValidateAuthor validates an author registration payload.
func (v *Validator) ValidateAuthor(a *domain.AuthorInput) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Name,
			validation.Required.Error("name_required"),
			validation.RuneLength(1, 100).Error("name_too_long"),
		),
		validation.Field(&a.Email,
			validation.Required.Error("email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&a.Password,
			validation.Required.Error("password_required"),
			validation.RuneLength(MinPasswordLength, 0).Error("password_too_short"),
		),
		validation.Field(&a.Role,
			validation.Required.Error("role_required"),
			validation.By(roleRule),
		),
	)
}

// ValidateCommentStatus validates a moderation decision. PENDING is not a
// decision and is rejected.
func (v *Validator) ValidateCommentStatus(status domain.CommentStatus) error {
	return validation.Validate(string(status),
		validation.Required.Error("status_required"),
		validation.In(
			string(domain.CommentStatusApproved),
			string(domain.CommentStatusRejected),
			string(domain.CommentStatusSpam),
		).Error("invalid_status"),
	)
}

func postStatusRule(value interface{}) error {
	s, _ := value.(domain.PostStatus)
	if s != "" && !domain.IsValidPostStatus(s) {
		return validation.NewError("invalid_status", "invalid status")
	}
	return nil
}

func roleRule(value interface{}) error {
	r, _ := value.(domain.Role)
	if r != "" && !r.IsValid() {
		return validation.NewError("invalid_role", "invalid role")
	}
	return nil
}

// FieldErrors flattens ozzo validation errors into a field to message map.
// It reports false when err did not come from validation.
func FieldErrors(err error) (map[string]string, bool) {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		var single validation.Error
		if errors.As(err, &single) {
			return map[string]string{"value": single.Error()}, true
		}
		return nil, false
	}

	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		fields[field] = fieldErr.Error()
	}
	return fields, true
}

// Slugify turns a title into a URL slug: accents are folded, letters
// lowercased and every run of other characters becomes a single dash.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingDash = false
			continue
		}
		pendingDash = true
	}
	return b.String()
}
