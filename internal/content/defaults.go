package content

import "sync"

var (
	aboutMe = `I’m a full-stack developer who designs and builds end-to-end web applications.
From crafting responsive, accessible interfaces to architecting secure APIs and scalable
databases, I focus on delivering products that are reliable, maintainable, and a joy to use.
My strength lies in translating ideas into production-ready solutions with clean code,
modern tooling, and a strong eye for user experience.`

	summary = `I deliver end-to-end solutions — from responsive interfaces to robust APIs and
databases — with a focus on performance, usability, and real business impact`

	projectOne = `Lightweight system for monitoring equipment health and scheduling maintenance.`

	projectTwo = `AI-ish schedule optimizer integrated into a Preventive Maintenance Monitoring
System that balances conflicts and workloads. Exports to calendar, reducing planning time
from hours to minutes.`

	projectThree = `In-browser annotation with offline support and autosave. Used by a dataset
of 20k+ images.`
)

// DefaultDocument returns the built-in content in its raw form.
func DefaultDocument() *Document {
	return &Document{
		Profile: ProfileDoc{
			Name:      "Bermel F. Mendoza",
			Role:      "Full-Stack Developer",
			Location:  "Philippines (UTC+8)",
			Headline:  "I build scalable full-stack web apps with seamless user experiences.",
			Summary:   summary,
			Image:     "/images/profile.jpg",
			Email:     "bermelmendoza@gmail.com",
			GitHub:    "https://github.com/Samael-I",
			Facebook:  "https://www.facebook.com/SaaamaeL",
			LinkedIn:  "https://www.linkedin.com/",
			ResumeURL: "#",
		},
		Projects: []ProjectDoc{
			{
				Title:       "Preventive Maintenance Monitoring System",
				Description: projectOne,
				Tags:        []string{"MongoDB", "Express.js", "React.js", "Node.js", "+Vite", "+TypeScript"},
				Link:        "https://mispm.peza.gov.ph",
				Repo:        "#",
			},
			{
				Title:       "Genetic Algorithm Scheduler",
				Description: projectTwo,
				Tags:        []string{"Python", "FastAPI"},
				Link:        "#",
				Repo:        "#",
			},
			{
				Title:       "Image Annotator",
				Description: projectThree,
				Tags:        []string{"PWA", "React", "IndexedDB"},
				Link:        "#",
				Repo:        "#",
			},
		},
		Skills: []SkillGroupDoc{
			{Group: "Technical Support", Items: []string{"Troubleshooting", "Customer Support", "Technical Documentation"}},
			{Group: "Languages", Items: []string{"JavaScript/TypeScript", "Python", "Java"}},
			{Group: "Frameworks", Items: []string{"React.js", "Express.js", "Node.js"}},
			{Group: "Infra & Tools", Items: []string{"Git", "Docker", "MongoDB"}},
		},
		Experience: []ExperienceDoc{
			{
				Role:   "Full-Stack Developer",
				Org:    "Gov't employee",
				Period: "2021 — Present",
				Bullets: []string{
					"Delivered full‑stack System (React/Node/MongoDB)",
					"Skilled in gathering requirements, planning, and execution",
					"Set up CI and preview deploys for faster feedback",
					"IT support hardware and software",
				},
			},
		},
		About: AboutDoc{
			Body:       aboutMe,
			Highlights: []string{"CRUD operations", "REST API", "Web Socket", "Maximizing AI Tools", "Tech Support"},
		},
	}
}

// Default returns the built-in content. It panics if the built-in document
// does not validate.
var Default = sync.OnceValue(func() *Content {
	c, err := DefaultDocument().Build()
	if err != nil {
		panic("content: built-in document: " + err.Error())
	}
	return c
})
