package seed

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/artem13815/hr-dashboard/pkg/applicant"
	"github.com/artem13815/hr-dashboard/pkg/job"
)

const (
	// ApplicantCount is how many applicants a reseed generates.
	ApplicantCount = 420
	// BatchSize caps the rows written per insert round trip.
	BatchSize = 100

	// ActivityDays is how many days back Activity reaches, today included.
	ActivityDays = 30

	maxYears       = 12
	maxDaysAgo     = 60
	minDailyPerJob = 5
	maxDailyPerJob = 30
)

// Jobs returns the postings written by a job reseed.
func Jobs() []job.Job {
	return []job.Job{
		{
			Title:       "Senior Frontend Developer",
			Description: "Looking for an experienced React developer with 5+ years of experience in building modern web applications.",
			Status:      job.StatusActive,
			CreatedAt:   time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Backend Engineer",
			Description: "Node.js developer needed for building scalable microservices architecture.",
			Status:      job.StatusActive,
			CreatedAt:   time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Full Stack Developer",
			Description: "Experience with both frontend and backend technologies. Must know React and Node.js.",
			Status:      job.StatusActive,
			CreatedAt:   time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Data Scientist",
			Description: "Python expert with machine learning and data analysis skills.",
			Status:      job.StatusActive,
			CreatedAt:   time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Product Manager",
			Description: "Experienced PM to lead product development and strategy.",
			Status:      job.StatusActive,
			CreatedAt:   time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

var (
	firstNames = []string{
		"Alex", "Taylor", "Jordan", "Morgan", "Casey", "Riley", "Skyler", "Avery",
		"Peyton", "Quinn", "Hayden", "Reese", "Sawyer", "Rowan", "Emerson", "Finley",
		"Dakota", "Harper", "Blake", "Cameron", "Sam", "Drew", "Jamie", "Charlie",
		"Parker", "River", "Phoenix", "Sage", "Kai", "Ashton", "Bailey", "Eden",
		"Ellis", "Lennon", "Marley", "Oakley", "Quinn", "Remy", "Stevie", "Winter",
	}
	lastNames = []string{
		"Lee", "Kim", "Patel", "Nguyen", "Garcia", "Martinez", "Singh", "Chen",
		"Wang", "Khan", "Lopez", "Gonzalez", "Perez", "Sanchez", "Ramirez", "Torres",
		"Flores", "Rivera", "Gomez", "Diaz", "Smith", "Johnson", "Williams", "Brown",
		"Jones", "Miller", "Davis", "Rodriguez", "Wilson", "Anderson", "Thomas", "Taylor",
		"Moore", "Jackson", "Martin", "Thompson", "White", "Harris", "Clark", "Lewis",
	}

	seedStatuses = []applicant.Status{applicant.StatusApproved, applicant.StatusPendingReview, applicant.StatusRejected}

	experienceTemplates = []struct {
		format string
		shares [2]float64
	}{
		{"%d years in software development\n%d years with modern frameworks\n%d years in team leadership", [2]float64{0.7, 0.5}},
		{"%d years in full stack development\n%d years with React and Node.js\n%d years with cloud technologies", [2]float64{0.6, 0.4}},
		{"%d years in backend engineering\n%d years with microservices\n%d years with database optimization", [2]float64{0.8, 0.5}},
		{"%d years in data science\n%d years with Python and ML\n%d years with deep learning", [2]float64{0.7, 0.4}},
		{"%d years in product management\n%d years in agile environments\n%d years leading cross-functional teams", [2]float64{0.6, 0.5}},
	}

	qualificationTemplates = []string{
		"Bachelor's in Computer Science\nAWS Certified Solutions Architect\nScrum Master Certified",
		"Master's in Software Engineering\nGoogle Cloud Professional\nKubernetes Certified Administrator",
		"PhD in Data Science\nTensorFlow Developer Certificate\nAWS Machine Learning Specialty",
		"Bachelor's in Information Technology\nMongoDB Certified Developer\nDocker Certified Associate",
		"MBA in Product Management\nCertified Product Manager\nLean Six Sigma Black Belt",
		"Bachelor's in Computer Engineering\nAzure Developer Associate\nJenkins Certified Engineer",
		"Master's in Artificial Intelligence\nDeep Learning Specialization\nPython Institute Certified",
		"Bachelor's in Statistics\nTableau Desktop Specialist\nGoogle Analytics Certified",
	}
)

// years shift with the applicant index so neighbouring histories differ
var workTemplates = []func(i int) string{
	func(i int) string {
		return fmt.Sprintf("Senior Engineer at Tech Corp %d-%d\nLead Developer at StartupXYZ %d-%d\nSoftware Engineer at WebSolutions %d-%d",
			2020+i%4, 2021+i%4, 2018+i%3, 2020+i%4, 2016+i%3, 2018+i%3)
	},
	func(i int) string {
		return fmt.Sprintf("Principal Developer at CloudTech %d-Present\nSenior Developer at DataSystems %d-%d\nDeveloper at AppWorks %d-%d",
			2021+i%3, 2018+i%4, 2021+i%3, 2015+i%4, 2018+i%4)
	},
	func(i int) string {
		return fmt.Sprintf("Engineering Manager at Enterprise Co %d-Present\nSenior Developer at Digital Agency %d-%d\nFrontend Engineer at WebStudio %d-%d",
			2020+i%4, 2017+i%4, 2020+i%4, 2015+i%3, 2017+i%4)
	},
	func(i int) string {
		return fmt.Sprintf("Data Scientist at AI Labs %d-Present\nData Analyst at Analytics Inc %d-%d\nJunior Analyst at DataCorp %d-%d",
			2021+i%3, 2019+i%3, 2021+i%3, 2017+i%3, 2019+i%3)
	},
	func(i int) string {
		return fmt.Sprintf("Product Manager at SaaS Company %d-Present\nAssociate PM at TechFirm %d-%d\nBusiness Analyst at StartupHub %d-%d",
			2020+i%4, 2018+i%3, 2020+i%4, 2016+i%3, 2018+i%3)
	},
}

// Generator builds synthetic applicants. Randomness and the clock are
// injected so output can be reproduced.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

func NewGenerator(rnd *rand.Rand, now func() time.Time) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rnd: rnd, now: now}
}

// Now reports the generator's clock.
func (g *Generator) Now() time.Time {
	return g.now()
}

// Applicants generates n applicants spread round-robin over jobIDs, job
// match and application status. Experience is 1..12 years and the
// application date falls within the last 60 days.
func (g *Generator) Applicants(n int, jobIDs []int64) []applicant.Applicant {
	if n <= 0 || len(jobIDs) == 0 {
		return nil
	}
	now := g.now()
	out := make([]applicant.Applicant, 0, n)
	for i := 0; i < n; i++ {
		daysAgo := g.rnd.IntN(maxDaysAgo)
		out = append(out, g.applicant(i, jobIDs[i%len(jobIDs)], now.AddDate(0, 0, -daysAgo)))
	}
	return out
}

// Activity generates a steady stream of applications: for each of the last
// ActivityDays days and each job in jobIDs, between 5 and 30 applicants
// dated that day. Ids are assigned from firstID upwards.
func (g *Generator) Activity(jobIDs []int64, firstID int64) []applicant.Applicant {
	if len(jobIDs) == 0 {
		return nil
	}
	now := g.now()
	var out []applicant.Applicant
	for d := ActivityDays - 1; d >= 0; d-- {
		createdAt := now.AddDate(0, 0, -d)
		for _, id := range jobIDs {
			n := minDailyPerJob + g.rnd.IntN(maxDailyPerJob-minDailyPerJob+1)
			for range n {
				a := g.applicant(len(out), id, createdAt)
				a.ID = firstID + int64(len(out))
				out = append(out, a)
			}
		}
	}
	return out
}

func (g *Generator) applicant(i int, jobID int64, createdAt time.Time) applicant.Applicant {
	first := firstNames[i%len(firstNames)]
	last := lastNames[(i/len(firstNames))%len(lastNames)]

	years := g.rnd.IntN(maxYears) + 1
	exp := experienceTemplates[i%len(experienceTemplates)]

	return applicant.Applicant{
		Name:     first + " " + last,
		Email:    fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i+1),
		JobID:    jobID,
		JobMatch: applicant.JobMatches[i%len(applicant.JobMatches)],
		Status:   seedStatuses[i%len(seedStatuses)],
		YearsOfExperience: fmt.Sprintf(exp.format, years,
			int(float64(years)*exp.shares[0]), int(float64(years)*exp.shares[1])),
		NotableQualifications: qualificationTemplates[i%len(qualificationTemplates)],
		NotableWorkExperience: workTemplates[i%len(workTemplates)](i),
		CreatedAt:             createdAt,
	}
}
