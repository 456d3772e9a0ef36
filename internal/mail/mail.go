package mail

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/jekabolt/academy-manager/internal/dependency"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

const (
	defaultTimezone = "America/Panama"
	defaultDailyCap = 300
)

type Config struct {
	Provider       string        `mapstructure:"provider"`
	APIKey         string        `mapstructure:"sendgrid_api_key"`
	SESRegion      string        `mapstructure:"ses_region"`
	FromEmail      string        `mapstructure:"from_email"`
	FromName       string        `mapstructure:"from_email_name"`
	ReplyTo        string        `mapstructure:"reply_to"`
	AcademyName    string        `mapstructure:"academy_name"`
	DailyCap       int           `mapstructure:"daily_cap"`
	Timezone       string        `mapstructure:"timezone"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
}

type Mailer struct {
	sender         dependency.Sender
	mailRepository dependency.Mail
	c              *Config
	loc            *time.Location
	now            func() time.Time
	templates      map[string]*template.Template
	kick           chan struct{}

	// mu serializes queue runs of this process so the cap is counted once per run.
	mu sync.Mutex
	// unrecorded holds sends not yet marked in the queue, guarded by mu.
	unrecorded map[int]unrecordedSend

	ctx    context.Context
	cancel context.CancelFunc
}

func New(c *Config, sender dependency.Sender, mailRepository dependency.Mail) (dependency.Mailer, error) {
	return new(c, sender, mailRepository)
}

func new(c *Config, sender dependency.Sender, mailRepository dependency.Mail) (*Mailer, error) {
	if c.FromEmail == "" || c.FromName == "" {
		return nil, fmt.Errorf("incomplete config: from email and name are required")
	}
	if c.DailyCap < 0 {
		return nil, fmt.Errorf("daily cap must not be negative: %d", c.DailyCap)
	}
	if c.DailyCap == 0 {
		c.DailyCap = defaultDailyCap
	}
	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}
	if c.AcademyName == "" {
		c.AcademyName = c.FromName
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("can't load mailer timezone %q: %w", c.Timezone, err)
	}

	m := &Mailer{
		sender:         sender,
		mailRepository: mailRepository,
		c:              c,
		loc:            loc,
		now:            time.Now,
		templates:      make(map[string]*template.Template),
		kick:           make(chan struct{}, 1),
		unrecorded:     make(map[int]unrecordedSend),
	}

	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	return m, nil
}

func (m *Mailer) parseTemplates() error {
	templateDir := "templates"

	dirEntries, err := templatesFS.ReadDir(templateDir)
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		templatePath := filepath.Join(templateDir, entry.Name())

		tmpl, err := template.ParseFS(templatesFS, templatePath)
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}

		m.templates[entry.Name()] = tmpl
	}

	return nil
}

func (m *Mailer) render(tn string, data any) (string, string, error) {
	tmpl, ok := m.templates[tn]
	if !ok {
		return "", "", fmt.Errorf("template not found: %v", tn)
	}

	subject, ok := templateSubjects[tn]
	if !ok {
		return "", "", fmt.Errorf("subject not found for template: %v", tn)
	}

	body := &strings.Builder{}
	if err := tmpl.Execute(body, data); err != nil {
		return "", "", fmt.Errorf("error executing template: %w", err)
	}

	return fmt.Sprintf(subject, m.c.AcademyName), body.String(), nil
}

// startOfDay is midnight of the current day in the mailer timezone.
func (m *Mailer) startOfDay() time.Time {
	now := m.now().In(m.loc)
	y, mo, d := now.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, m.loc)
}
