// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package config loads the site settings shown in the page header, footer
// and on the contact page.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvSiteName     = "SITE_NAME"
	EnvContactEmail = "SITE_CONTACT_EMAIL"
	EnvContactPhone = "SITE_CONTACT_PHONE"
)

// Site holds the business details rendered on every page.
type Site struct {
	Name    string  `yaml:"name"`
	Contact Contact `yaml:"contact"`
	Social  []Link  `yaml:"social"`
}

// Contact holds the details listed on the contact page and in the footer.
type Contact struct {
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`

	// Address and Hours are keyed by language code.
	Address map[string]string `yaml:"address"`
	Hours   map[string]string `yaml:"hours"`
}

// Link is a labelled external URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Default returns the built-in settings used when no file is configured.
func Default() Site {
	return Site{
		Name: "China Tours & Exhibitions",
		Contact: Contact{
			Email: "info@tourbusiness.cn",
			Phone: "+86 10 8888 6666",
			Address: map[string]string{
				"en": "88 Jianguo Road, Chaoyang District, Beijing",
				"zh": "北京市朝阳区建国路88号", //nolint:gosmopolitan // localized address
			},
			Hours: map[string]string{
				"en": "Mon-Fri 9:00-18:00 (UTC+8)",
				"zh": "周一至周五 9:00-18:00（北京时间）", //nolint:gosmopolitan // localized hours
			},
		},
	}
}

// Localized picks the value for lang, then English, then any value.
func Localized(values map[string]string, lang string) string {
	if v, ok := values[lang]; ok && v != "" {
		return v
	}

	if v, ok := values["en"]; ok && v != "" {
		return v
	}

	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// Load reads the settings from path on top of the defaults and applies
// environment overrides. An empty path skips the file.
func Load(path string) (Site, error) {
	site := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Site{}, fmt.Errorf("read site config %s: %w", path, err)
		}

		var parsed Site
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return Site{}, fmt.Errorf("parse site config %s: %w", path, err)
		}

		Merge(&site, parsed)
	}

	ApplyEnvOverrides(&site)

	if err := site.Validate(); err != nil {
		return Site{}, err
	}

	return site, nil
}

// Merge copies every non-empty value of src into dst.
func Merge(dst *Site, src Site) {
	if src.Name != "" {
		dst.Name = src.Name
	}

	if src.Contact.Email != "" {
		dst.Contact.Email = src.Contact.Email
	}

	if src.Contact.Phone != "" {
		dst.Contact.Phone = src.Contact.Phone
	}

	if src.Contact.Address != nil {
		dst.Contact.Address = src.Contact.Address
	}

	if src.Contact.Hours != nil {
		dst.Contact.Hours = src.Contact.Hours
	}

	if src.Social != nil {
		dst.Social = src.Social
	}
}

// ApplyEnvOverrides replaces values that are set in the environment.
func ApplyEnvOverrides(site *Site) {
	if v := strings.TrimSpace(os.Getenv(EnvSiteName)); v != "" {
		site.Name = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvContactEmail)); v != "" {
		site.Contact.Email = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvContactPhone)); v != "" {
		site.Contact.Phone = v
	}
}

// Validate rejects settings the pages cannot render.
func (s Site) Validate() error {
	var errs []error

	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, errors.New("site name is empty"))
	}

	for i, l := range s.Social {
		if l.Label == "" || l.URL == "" {
			errs = append(errs, fmt.Errorf("social link %d needs both label and url", i))
		}
	}

	return errors.Join(errs...)
}

// Store holds the current settings and can be swapped while serving.
type Store struct {
	current atomic.Pointer[Site]
}

// NewStore returns a store holding site.
func NewStore(site Site) *Store {
	s := &Store{}
	s.Set(site)

	return s
}

// Get returns the current settings.
func (s *Store) Get() Site {
	if p := s.current.Load(); p != nil {
		return *p
	}

	return Default()
}

// Set replaces the current settings.
func (s *Store) Set(site Site) {
	s.current.Store(&site)
}
