package response

import (
	"fmt"
	"strings"

	"devonn-assistant-be/pkg/chat/message"
	"devonn-assistant-be/pkg/nlu/sentiment"
)

// returningUserThreshold is the message count after which greetings say welcome back.
const returningUserThreshold = 5

func submit(id, label string) message.Button {
	return message.Button{ID: id, Label: label, Action: message.PendingAction{Kind: message.ActionSubmitLabel}}
}

func greeting(req Request, _ mentions) message.Draft {
	if req.Context.MessageCount > returningUserThreshold {
		return message.Draft{Content: "Welcome back! I'm ready to continue helping with your AI deployment and integration needs. What would you like to work on now?"}
	}
	return message.Draft{
		Content: sentiment.Acknowledgment(req.Context.LastUserSentiment) +
			"Hello! Welcome to DEVONN.AI. I'm your AI assistant for deploying AI systems and managing API integrations. How can I help you today?",
	}
}

func help(req Request, m mentions) message.Draft {
	var content string
	switch {
	case len(m.services) > 0:
		content = fmt.Sprintf("I can help you with %s. What specifically would you like to know?", strings.Join(m.services, ", "))
	case len(m.actions) > 0:
		content = fmt.Sprintf("I can help you %s your AI systems. Would you like specific guidance?", strings.Join(m.actions, ", "))
	default:
		content = "I can help you with deploying AI systems, managing Kubernetes clusters, connecting to APIs, monitoring services, and more. What specific assistance do you need?"
	}

	first := submit("b1", "Deployment Help")
	second, third := submit("b2", "API Integration"), submit("b3", "Cluster Management")
	if containsAny(m.services, "kubernetes", "k8s") {
		first = submit("b1", "Kubernetes Deployment")
		second, third = submit("b2", "Cluster Management"), submit("b3", "API Integration")
	}

	return message.Draft{
		Content: sentiment.Acknowledgment(req.Context.LastUserSentiment) + content,
		Kind:    message.KindButtons,
		Buttons: []message.Button{first, second, third, submit("b4", "System Status")},
	}
}

func pricing(Request, mentions) message.Draft {
	return message.Draft{
		Content: "DEVONN.AI offers several pricing tiers based on your deployment and integration needs:",
		Kind:    message.KindLinks,
		Links: []message.Link{
			{Label: "Basic Plan - $99/month", URL: "#"},
			{Label: "Professional Plan - $299/month", URL: "#"},
			{Label: "Enterprise Plan - Custom pricing", URL: "#"},
		},
	}
}

func features(Request, mentions) message.Draft {
	return message.Draft{
		Content: "DEVONN.AI offers the following key features:" +
			"\n\n• Kubernetes deployment orchestration" +
			"\n• External API integration" +
			"\n• Service monitoring and observability" +
			"\n• Istio service mesh integration" +
			"\n• Kong API gateway management" +
			"\n• Canary deployments with Argo Rollouts" +
			"\n• Comprehensive logging system",
	}
}

func deployment(req Request, m mentions) message.Draft {
	var content string
	switch {
	case len(m.platforms) > 0:
		p := m.platforms[0]
		content = fmt.Sprintf("To deploy an AI system on %s, you'll need to configure your DEVONN.AI settings for %s integration. Would you like me to help you set up the %s connection?", p, p, p)
	case len(m.services) > 0:
		s := m.services[0]
		content = fmt.Sprintf("Deploying with %s is a great choice! DEVONN.AI provides streamlined integration with %s. Would you like to see our %s deployment guide?", s, s, s)
	default:
		content = "To deploy an AI system using DEVONN.AI, navigate to the Deployment Dashboard where you can connect to your Kubernetes cluster and follow our step-by-step deployment process. Would you like me to walk you through it?"
	}

	if req.Snapshot.IsClusterConnected {
		content += "\n\nI notice you're already connected to a Kubernetes cluster. " + req.Snapshot.DeploymentSummary
	}
	return message.Draft{Content: content}
}

func api(req Request, _ mentions) message.Draft {
	var content string
	if n := len(req.Snapshot.APIConfigs); n > 0 {
		content = fmt.Sprintf("I see you have %d API configurations set up. ", n)
		if connected := req.Snapshot.ConnectedAPIs(); connected > 0 {
			content += fmt.Sprintf("%d of them are currently connected.", connected)
		} else {
			content += "None of them are currently connected."
		}
		content += "\n\nYou can manage your API connections by clicking on the API Management section. Would you like to add a new API connection?"
	} else {
		content = "To connect to external APIs, you can use our API Management section. Would you like to add a new API connection now?"
	}

	return message.Draft{
		Content: content,
		Kind:    message.KindButtons,
		Buttons: []message.Button{
			{
				ID:     "api1",
				Label:  "Add New API",
				Action: message.PendingAction{Kind: message.ActionNotify, Notice: "Navigate to API Management to add new APIs"},
			},
			submit("api2", "View API Status"),
		},
	}
}

func status(req Request, _ mentions) message.Draft {
	var b strings.Builder
	b.WriteString("Here's the current status of your DEVONN.AI system:\n\n")
	b.WriteString(req.Snapshot.DeploymentSummary + "\n\n")
	if n := len(req.Snapshot.APIConfigs); n > 0 {
		fmt.Fprintf(&b, "API Integrations: %d configured, %d connected.\n\n", n, req.Snapshot.ConnectedAPIs())
	} else {
		b.WriteString("API Integrations: None configured.\n\n")
	}
	b.WriteString("System Processes: " + ProcessCountPlaceholder + " running.")
	return message.Draft{Content: b.String()}
}

func technical(_ Request, m mentions) message.Draft {
	switch {
	case len(m.services) > 0:
		s := strings.Join(m.services, ", ")
		return message.Draft{Content: fmt.Sprintf("I see you're interested in %s. DEVONN.AI provides robust support for %s. Would you like specific technical documentation or implementation guidance?", s, s)}
	case len(m.platforms) > 0:
		p := strings.Join(m.platforms, ", ")
		return message.Draft{Content: fmt.Sprintf("DEVONN.AI can deploy to %s environments. Would you like information about our %s integration capabilities?", p, p)}
	default:
		return message.Draft{Content: "I understand you have a technical question. DEVONN.AI supports various technologies including Kubernetes, Istio, Kong, Prometheus, Grafana, Jaeger, and external API integrations. Could you provide more specific details about your question?"}
	}
}

func farewell(Request, mentions) message.Draft {
	return message.Draft{Content: "Thank you for using DEVONN.AI Assistant. If you need any further assistance with deployments or API integrations, feel free to ask. Have a great day!"}
}

func unrecognized(Request, mentions) message.Draft {
	return message.Draft{
		Content: "I'm not sure I understand. Could you rephrase your question or select from common topics?",
		Kind:    message.KindButtons,
		Buttons: []message.Button{
			submit("b1", "Deployment"),
			submit("b2", "API Integration"),
			submit("b3", "Help"),
		},
	}
}

func containsAny(values []string, wanted ...string) bool {
	for _, v := range values {
		for _, w := range wanted {
			if v == w {
				return true
			}
		}
	}
	return false
}
