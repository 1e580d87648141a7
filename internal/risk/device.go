package risk

import (
	"fmt"
	"strings"
)

// DeviceProfile is the baseline likelihood and impact for a class of device.
type DeviceProfile struct {
	Type        string     `json:"type"`
	Likelihood  Likelihood `json:"likelihood"`
	Impact      Impact     `json:"impact"`
	Description string     `json:"description"`
}

const OtherDevice = "other"

var profiles = map[string]DeviceProfile{
	"workstation": {Type: "workstation", Likelihood: Possible, Impact: Minor, Description: "Desktop used by staff for day-to-day work."},
	"laptop":      {Type: "laptop", Likelihood: Likely, Impact: Moderate, Description: "Portable device exposed to loss, theft and untrusted networks."},
	"server":      {Type: "server", Likelihood: Possible, Impact: Major, Description: "Hosts shared business applications or data."},
	"mobile":      {Type: "mobile", Likelihood: Likely, Impact: Minor, Description: "Phone or tablet with access to business email or apps."},
	"network":     {Type: "network", Likelihood: Unlikely, Impact: Major, Description: "Router, switch, firewall or wireless access point."},
	"iot":         {Type: "iot", Likelihood: Likely, Impact: Minor, Description: "Camera, sensor or other embedded device, often unmanaged."},
	"printer":     {Type: "printer", Likelihood: Possible, Impact: Negligible, Description: "Networked printer or multifunction device."},
	"cloud":       {Type: "cloud", Likelihood: Possible, Impact: Major, Description: "Cloud-hosted workload or virtual machine."},
	OtherDevice:   {Type: OtherDevice, Likelihood: Possible, Impact: Moderate, Description: "Device that fits no other class."},
}

// DeviceTypes lists the known device types in display order.
func DeviceTypes() []string {
	return []string{"workstation", "laptop", "server", "mobile", "network", "iot", "printer", "cloud", OtherDevice}
}

// ProfileFor returns the profile for a device type, falling back to "other".
func ProfileFor(deviceType string) DeviceProfile {
	if p, ok := profiles[strings.ToLower(strings.TrimSpace(deviceType))]; ok {
		return p
	}
	return profiles[OtherDevice]
}

// ParseDeviceType normalises a device type and rejects unknown ones.
func ParseDeviceType(s string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if _, ok := profiles[t]; !ok {
		return "", fmt.Errorf("unknown device type: %q", s)
	}
	return t, nil
}

type Device struct {
	Name               string `json:"name"`
	Type               string `json:"type"`
	OS                 string `json:"os,omitempty"`
	Owner              string `json:"owner,omitempty"`
	InternetFacing     bool   `json:"internetFacing"`
	Encrypted          bool   `json:"encrypted"`
	Patched            bool   `json:"patched"`
	EndpointProtection bool   `json:"endpointProtection"`
	SensitiveData      bool   `json:"sensitiveData"`
}

type DeviceRisk struct {
	Device     Device     `json:"device"`
	Likelihood Likelihood `json:"likelihood"`
	Impact     Impact     `json:"impact"`
	Level      Level      `json:"level"`
}

// AssessDevice adjusts the device type's baseline by the device's exposure and
// safeguards, then rates it on the matrix.
func AssessDevice(d Device) DeviceRisk {
	p := ProfileFor(d.Type)
	l, i := int(p.Likelihood), int(p.Impact)
	if d.InternetFacing {
		l++
	}
	if !d.Patched {
		l++
	}
	if !d.EndpointProtection {
		l++
	}
	if !d.Encrypted {
		i++
	}
	if d.SensitiveData {
		i++
	}
	lk, im := Likelihood(clamp(l)), Impact(clamp(i))
	return DeviceRisk{Device: d, Likelihood: lk, Impact: im, Level: Assess(lk, im)}
}

func AssessDevices(devices []Device) []DeviceRisk {
	out := make([]DeviceRisk, 0, len(devices))
	for _, d := range devices {
		out = append(out, AssessDevice(d))
	}
	return out
}
