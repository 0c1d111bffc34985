package model

type samplePerson struct {
	name, phone, email, address string
	vendor                      bool
	tags                        []string
	weddings                    []string
	tasks                       []*Task
}

// SampleBook returns the book a new user starts with.
func SampleBook() *Book {
	deadline := mustTask(NewDeadline("Schedule hair and makeup trials", "2025-12-22"))

	people := []samplePerson{
		{
			name: "Alex Yeoh", phone: "87438807", email: "alexyeoh@example.com",
			address: "Blk 30 Geylang Street 29, #06-40", vendor: true,
			tags: []string{"hotel manager"}, weddings: []string{"Casey's Wedding"},
			tasks: []*Task{mustTask(NewTodo("Finalize catering menu"))},
		},
		{
			name: "Bernice Yu", phone: "99272758", email: "berniceyu@example.com",
			address: "Blk 30 Lorong 3 Serangoon Gardens, #07-18",
			tags:    []string{"florist", "guest"},
		},
		{
			name: "Charlotte Oliveiro", phone: "93210283", email: "charlotte@example.com",
			address: "Blk 11 Ang Mo Kio Street 74, #11-04",
			tags:    []string{"neighbours"}, weddings: []string{"Wedding August 2029", "Wedding 2"},
		},
		{
			name: "David Li", phone: "91031282", email: "lidavid@example.com",
			address: "Blk 436 Serangoon Gardens Street 26, #16-43", vendor: true,
			tags: []string{"makeup artist"}, weddings: []string{"Wedding August 2025", "Tom's Wedding"},
			tasks: []*Task{mustTask(NewTodo("Send invitations"))},
		},
		{
			name: "Irfan Ibrahim", phone: "92492021", email: "irfan@example.com",
			address: "Blk 47 Tampines Street 20, #17-35", vendor: true,
			tags: []string{"photographer", "guest"}, weddings: []string{"Casey's Wedding"},
			tasks: []*Task{deadline},
		},
		{
			name: "Roy Balakrishnan", phone: "92624417", email: "royb@example.com",
			address: "Blk 45 Aljunied Street 85, #11-31", vendor: true,
			tags: []string{"hairstylist"}, weddings: []string{"Tom's Wedding"},
		},
	}

	b := NewBook()

	mustDo(b.AddTask(mustTask(NewEvent("Venue walkthrough", "2025-11-01", "2025-11-02"))))

	for _, sp := range people {
		p, err := NewPerson(sp.name, sp.phone, sp.email, sp.address)
		if err != nil {
			panic(err)
		}

		p.Vendor = sp.vendor
		mustDo(b.AddPerson(p))
		_, err = b.TagPersonNamed(p, sp.tags, true)
		mustDo(err)
		_, err = b.AssignWeddingNamed(p, sp.weddings, RoleGuest, true)
		mustDo(err)

		for _, t := range sp.tasks {
			mustDo(b.AddTask(t))
		}

		if len(sp.tasks) > 0 {
			mustDo(b.AssignTasks(p, sp.tasks))
		}
	}

	b.revision = 0

	return b
}

func mustDo(err error) {
	if err != nil {
		panic(err)
	}
}

func mustTask(t *Task, err error) *Task {
	mustDo(err)
	return t
}
