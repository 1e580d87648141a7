package questionnaire

import "rasbita/internal/mapping"

var sections = []Section{
	{
		ID:           "identity-behavior",
		Title:        "Identity & Behavior",
		SOSParameter: mapping.IdentityBehavior,
		Questions: []Question{
			{ID: "ib-mfa", Prompt: "Is multi-factor authentication enforced for email, remote access and admin accounts?", Category: CategoryProtect, Weight: 3, Severity: "critical"},
			{ID: "ib-offboarding", Prompt: "Are accounts disabled the same day an employee or contractor leaves?", Category: CategoryProtect, Weight: 2, Severity: "high"},
			{ID: "ib-shared-accounts", Prompt: "Are shared or generic accounts eliminated or individually accountable?", Category: CategoryIdentify, Weight: 1, Severity: "medium"},
			{ID: "ib-training", Prompt: "Do staff complete security awareness and phishing training at least annually?", Category: CategoryProtect, Weight: 2, Severity: "high"},
		},
	},
	{
		ID:           "device-inventory",
		Title:        "Device Inventory",
		SOSParameter: mapping.DeviceInventoryTracking,
		Questions: []Question{
			{ID: "di-inventory", Prompt: "Is there a complete, current inventory of devices that access business data?", Category: CategoryIdentify, Weight: 3, Severity: "critical"},
			{ID: "di-owner", Prompt: "Does every inventoried device have a named owner?", Category: CategoryIdentify, Weight: 1, Severity: "medium"},
			{ID: "di-patching", Prompt: "Are operating systems and applications patched within 30 days of release?", Category: CategorySecurityControls, Weight: 3, Severity: "critical"},
			{ID: "di-encryption", Prompt: "Are laptops and mobile devices encrypted?", Category: CategorySecurityControls, Weight: 2, Severity: "high"},
		},
	},
	{
		ID:           "risk",
		Title:        "Risk Assessment",
		SOSParameter: mapping.RiskAssessment,
		Questions: []Question{
			{ID: "rk-assessment", Prompt: "Has a formal risk assessment been performed in the last 12 months?", Category: CategoryRisk, Weight: 3, Severity: "high"},
			{ID: "rk-register", Prompt: "Are identified risks tracked in a register with owners and treatment plans?", Category: CategoryRisk, Weight: 2, Severity: "medium"},
			{ID: "rk-vendors", Prompt: "Are critical suppliers assessed for security risk?", Category: CategoryRisk, Weight: 1, Severity: "medium"},
		},
	},
	{
		ID:           "security-controls",
		Title:        "Security Controls",
		SOSParameter: mapping.SecurityControls,
		Questions: []Question{
			{ID: "sc-edr", Prompt: "Is endpoint protection (anti-malware or EDR) deployed on every workstation and server?", Category: CategorySecurityControls, Weight: 3, Severity: "critical"},
			{ID: "sc-email-filter", Prompt: "Is inbound email filtered for malware and phishing?", Category: CategorySecurityControls, Weight: 2, Severity: "high"},
			{ID: "sc-logging", Prompt: "Are security logs collected centrally and reviewed?", Category: CategoryDetect, Weight: 2, Severity: "high"},
			{ID: "sc-alerting", Prompt: "Do alerts for suspicious activity reach someone who can act on them?", Category: CategoryDetect, Weight: 2, Severity: "high"},
		},
	},
	{
		ID:           "architecture",
		Title:        "Network Architecture",
		SOSParameter: mapping.NetworkArchitecture,
		Questions: []Question{
			{ID: "ar-firewall", Prompt: "Is a managed firewall in place at every internet connection?", Category: CategoryArchitecture, Weight: 3, Severity: "critical"},
			{ID: "ar-segmentation", Prompt: "Are guest, IoT and business networks segmented from each other?", Category: CategoryArchitecture, Weight: 2, Severity: "high"},
			{ID: "ar-remote-access", Prompt: "Is remote access provided only through a VPN or zero-trust gateway?", Category: CategoryArchitecture, Weight: 2, Severity: "high"},
		},
	},
	{
		ID:           "compliance",
		Title:        "Compliance & Governance",
		SOSParameter: mapping.ComplianceRequirements,
		Questions: []Question{
			{ID: "cp-policies", Prompt: "Are written security policies approved by leadership and reviewed annually?", Category: CategoryGovern, Weight: 2, Severity: "medium"},
			{ID: "cp-obligations", Prompt: "Have applicable regulations and contractual obligations been identified?", Category: CategoryGovern, Weight: 2, Severity: "high"},
			{ID: "cp-owner", Prompt: "Is a named person accountable for cybersecurity?", Category: CategoryGovern, Weight: 1, Severity: "medium"},
		},
	},
	{
		ID:           "incident-response",
		Title:        "Incident Response",
		SOSParameter: mapping.IncidentResponse,
		Questions: []Question{
			{ID: "ir-plan", Prompt: "Is there a documented incident response plan?", Category: CategoryRespond, Weight: 3, Severity: "high"},
			{ID: "ir-exercise", Prompt: "Has the plan been exercised in the last 12 months?", Category: CategoryRespond, Weight: 2, Severity: "medium"},
			{ID: "ir-contacts", Prompt: "Are contacts for insurers, counsel and authorities recorded and current?", Category: CategoryRespond, Weight: 1, Severity: "low"},
		},
	},
	{
		ID:           "recovery",
		Title:        "Business Continuity & Recovery",
		SOSParameter: mapping.BusinessContinuityRecovery,
		Questions: []Question{
			{ID: "rc-backups", Prompt: "Are critical systems and data backed up to a location isolated from the production network?", Category: CategoryRecover, Weight: 3, Severity: "critical"},
			{ID: "rc-restore-test", Prompt: "Are restores from backup tested at least twice a year?", Category: CategoryRecover, Weight: 2, Severity: "high"},
			{ID: "rc-bcp", Prompt: "Is there a business continuity plan with recovery time objectives?", Category: CategoryRecover, Weight: 2, Severity: "medium"},
		},
	},
}
