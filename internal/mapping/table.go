package mapping

// SOS parameter names used by the questionnaire sections.
const (
	DeviceInventoryTracking    = "Device Inventory Tracking"
	IdentityBehavior           = "Identity Behavior & Hygiene"
	RiskAssessment             = "Risk Assessment"
	SecurityControls           = "Security Controls"
	NetworkArchitecture        = "Network Architecture"
	ComplianceRequirements     = "Compliance Requirements"
	IncidentResponse           = "Incident Response"
	BusinessContinuityRecovery = "Business Continuity & Recovery"
)

var table = []DomainMapping{
	{
		SOSParameter: DeviceInventoryTracking,
		Description:  "Tracking of every device that stores, processes or transmits business data, including ownership, location and lifecycle state.",
		SecurityDomainMappings: []DomainRelevance{
			{SecurityParameter: "assetManagement", Relevance: RelevanceCritical, Description: "An accurate device inventory is the foundation of asset management; unknown devices cannot be protected."},
			{SecurityParameter: "vulnerabilityManagement", Relevance: RelevanceHigh, Description: "Patch and vulnerability coverage is measured against the inventory."},
			{SecurityParameter: "configurationManagement", Relevance: RelevanceHigh, Description: "Baseline configurations are applied per device class recorded in the inventory."},
			{SecurityParameter: "endpointSecurity", Relevance: RelevanceHigh, Description: "Endpoint protection deployment is verified device by device."},
			{SecurityParameter: "dataProtection", Relevance: RelevanceMedium, Description: "Devices holding sensitive data need encryption and disposal tracking."},
			{SecurityParameter: "incidentResponse", Relevance: RelevanceMedium, Description: "Responders need to locate and isolate affected devices quickly."},
		},
	},
	{
		SOSParameter: IdentityBehavior,
		Description:  "How people and services authenticate, how credentials are managed and how access is granted and revoked.",
		SecurityDomainMappings: []DomainRelevance{
			{SecurityParameter: "identityManagement", Relevance: RelevanceCritical, Description: "Account lifecycle and credential hygiene define the identity attack surface."},
			{SecurityParameter: "accessControl", Relevance: RelevanceCritical, Description: "Least privilege and MFA depend on well-managed identities."},
			{SecurityParameter: "securityAwareness", Relevance: RelevanceHigh, Description: "Phishing resistance and password habits are behavioural controls."},
			{SecurityParameter: "monitoring", Relevance: RelevanceMedium, Description: "Anomalous sign-in behaviour is an early compromise signal."},
		},
	},
	{
		SOSParameter: RiskAssessment,
		Description:  "Periodic identification and rating of threats, vulnerabilities and business impact.",
		SecurityDomainMappings: []DomainRelevance{
			{SecurityParameter: "riskManagement", Relevance: RelevanceCritical, Description: "Risk assessment is the primary input to risk treatment decisions."},
			{SecurityParameter: "governance", Relevance: RelevanceHigh, Description: "Leadership sets risk appetite from assessment results."},
			{SecurityParameter: "thirdPartyRisk", Relevance: RelevanceMedium, Description: "Supplier risk is rated as part of the wider assessment."},
			{SecurityParameter: "assetManagement", Relevance: RelevanceMedium, Description: "Risks are scored against the assets they affect."},
		},
	},
	{
		SOSParameter: SecurityControls,
		Description:  "Technical and administrative safeguards deployed to reduce identified risks.",
		SecurityDomainMappings: []DomainRelevance{
			{SecurityParameter: "endpointSecurity", Relevance: RelevanceCritical, Description: "Anti-malware and EDR are the most common technical controls."},
			{SecurityParameter: "vulnerabilityManagement", Relevance: RelevanceHigh, Description: "Timely patching closes known exploitable weaknesses."},
			{SecurityParameter: "cryptography", Relevance: RelevanceHigh, Description: "Encryption at rest and in transit protects data when other controls fail."},
			{SecurityParameter: "backupRecovery", Relevance: RelevanceMedium, Description: "Backups are a compensating control against destructive attacks."},
		},
	},
	{
		SOSParameter: NetworkArchitecture,
		Description:  "Segmentation, perimeter design and exposure of services to untrusted networks.",
		SecurityDomainMappings: []DomainRelevance{
			{SecurityParameter: "networkSecurity", Relevance: RelevanceCritical, Description: "Segmentation and perimeter filtering limit lateral movement."},
			{SecurityParameter: "accessControl", Relevance: RelevanceHigh, Description: "Remote access paths must enforce strong authentication."},
			{SecurityParameter: "monitoring", Relevance: RelevanceMedium, Description: "Network telemetry supports detection of intrusions."},
		},
	},
	{
		SOSParameter: ComplianceRequirements,
		Description:  "Regulatory, contractual and industry obligations that apply to the business.",
		SecurityDomainMappings: []DomainRelevance{
			{SecurityParameter: "complianceManagement", Relevance: RelevanceCritical, Description: "Obligations must be identified before they can be met."},
			{SecurityParameter: "governance", Relevance: RelevanceHigh, Description: "Policies and accountability are expected by most frameworks."},
			{SecurityParameter: "dataProtection", Relevance: RelevanceHigh, Description: "Privacy regulations impose data handling requirements."},
			{SecurityParameter: "thirdPartyRisk", Relevance: RelevanceLow, Description: "Some obligations flow down to suppliers."},
		},
	},
	{
		SOSParameter: IncidentResponse,
		Description:  "Preparation, detection, containment and communication when a security incident occurs.",
		SecurityDomainMappings: []DomainRelevance{
			{SecurityParameter: "incidentResponse", Relevance: RelevanceCritical, Description: "A documented and rehearsed plan determines how fast incidents are contained."},
			{SecurityParameter: "monitoring", Relevance: RelevanceHigh, Description: "Incidents can only be handled once they are detected."},
			{SecurityParameter: "complianceManagement", Relevance: RelevanceMedium, Description: "Breach notification deadlines are regulatory requirements."},
		},
	},
	{
		SOSParameter: BusinessContinuityRecovery,
		Description:  "Ability to keep operating during a disruption and to restore systems and data afterwards.",
		SecurityDomainMappings: []DomainRelevance{
			{SecurityParameter: "businessContinuity", Relevance: RelevanceCritical, Description: "Continuity plans define acceptable downtime and data loss."},
			{SecurityParameter: "backupRecovery", Relevance: RelevanceCritical, Description: "Tested, isolated backups are required to recover from ransomware."},
			{SecurityParameter: "assetManagement", Relevance: RelevanceMedium, Description: "Recovery priorities follow asset criticality."},
		},
	},
}
