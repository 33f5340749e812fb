package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

// Known job boards.
const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformAshby      Platform = "ashby"
	PlatformUnknown    Platform = "unknown"
)

type platformRule struct {
	platform Platform
	hosts    []string
	content  []string
	noise    []string
}

var platformRules = []platformRule{
	{
		platform: PlatformGreenhouse,
		hosts:    []string{"greenhouse.io"},
		content:  []string{".job__description.body", ".job__description", ".job-description__content", "#content", ".job-post-container"},
		noise:    []string{".application--wrapper", ".voluntary-self-id", "#usa_self_id_section", ".post-apply"},
	},
	{
		platform: PlatformLever,
		hosts:    []string{"lever.co"},
		content:  []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"},
		noise:    []string{".apply-section", ".lever-application-form", ".posting-apply"},
	},
	{
		platform: PlatformWorkday,
		hosts:    []string{"workday.com", "myworkdayjobs.com"},
		content:  []string{"[data-automation-id='jobDescription']", ".job-description"},
		noise:    []string{"[data-automation-id='applyButton']", ".application-section"},
	},
	{
		platform: PlatformAshby,
		hosts:    []string{"ashbyhq.com"},
		content:  []string{"._descriptionText", ".ashby-job-posting-right-pane", "main"},
		noise:    []string{".ashby-application-form-container"},
	},
}

// noise shared by every job board: application forms, EEO blocks, share buttons.
var commonBoardNoise = []string{
	"form",
	"#application-form",
	".application-form",
	".apply-button-container",
	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	".legal-disclosure",
	".social-share",
	".share-buttons",
	".cookie-consent",
	".gdpr-notice",
}

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	if rule, ok := lookupRule(urlStr); ok {
		return rule.platform
	}
	return PlatformUnknown
}

func lookupRule(urlStr string) (platformRule, bool) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return platformRule{}, false
	}
	host := strings.ToLower(parsed.Hostname())
	for _, rule := range platformRules {
		for _, h := range rule.hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return rule, true
			}
		}
	}
	return platformRule{}, false
}

// SelectorsFor returns the board's own selectors ahead of the generic ones.
// Board noise always includes the shared application-form blocks.
func SelectorsFor(platform Platform) Selectors {
	sel := Generic()
	sel.Noise = append(sel.Noise, commonBoardNoise...)
	for _, rule := range platformRules {
		if rule.platform == platform {
			sel.Content = append(append([]string(nil), rule.content...), sel.Content...)
			sel.Noise = append(sel.Noise, rule.noise...)
			break
		}
	}
	return sel
}
