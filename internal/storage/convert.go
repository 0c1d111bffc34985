package storage

import (
	"fmt"
	"log/slog"

	"github.com/calvinalkan/wedlinker/internal/model"
)

// toBook rebuilds a book from doc. Person references are rebound to the
// loaded objects, and links that only one side records are repaired.
func toBook(doc *document, log *slog.Logger) (*model.Book, error) {
	b := model.NewBook()

	persons := make([]*model.Person, 0, len(doc.Persons))

	for i, pd := range doc.Persons {
		p, err := model.NewPerson(pd.Name, pd.Phone, pd.Email, pd.Address)
		if err != nil {
			return nil, fmt.Errorf("person %d: %w", i+1, err)
		}

		p.Vendor = pd.Vendor || len(pd.Tasks) > 0

		if err := b.AddPerson(p); err != nil {
			return nil, fmt.Errorf("person %d: %w", i+1, err)
		}

		persons = append(persons, p)
	}

	for _, td := range doc.Tags {
		t, err := model.NewTag(td.Name)
		if err != nil {
			return nil, fmt.Errorf("tag: %w", err)
		}

		if err := b.AddTag(t); err != nil {
			return nil, fmt.Errorf("tag: %w", err)
		}
	}

	for _, kd := range doc.Tasks {
		t, err := kd.task()
		if err != nil {
			return nil, fmt.Errorf("task: %w", err)
		}

		if err := b.AddTask(t); err != nil {
			return nil, fmt.Errorf("task: %w", err)
		}
	}

	for _, wd := range doc.Weddings {
		if err := addWedding(b, wd); err != nil {
			return nil, fmt.Errorf("wedding %q: %w", wd.Name, err)
		}
	}

	for i, p := range persons {
		if err := linkPerson(b, p, doc.Persons[i], log); err != nil {
			return nil, fmt.Errorf("person %q: %w", p.Name, err)
		}
	}

	if err := b.Check(); err != nil {
		return nil, fmt.Errorf("inconsistent data: %w", err)
	}

	return b, nil
}

func addWedding(b *model.Book, wd weddingDoc) error {
	w, err := model.NewWedding(wd.Name)
	if err != nil {
		return err
	}

	if err := b.AddWedding(w); err != nil {
		return err
	}

	join := func(ref personRef, role model.Role) error {
		p := b.FindPerson(model.Identity(ref))
		if p == nil {
			return fmt.Errorf("%w: %s", model.ErrPersonNotFound, ref.Name)
		}

		return b.AssignWedding(p, []*model.Wedding{w}, role)
	}

	if wd.Partner1 != nil {
		if err := join(*wd.Partner1, model.RolePartner1); err != nil {
			return err
		}
	}

	if wd.Partner2 != nil {
		if err := join(*wd.Partner2, model.RolePartner2); err != nil {
			return err
		}
	}

	for _, ref := range wd.Guests {
		if err := join(ref, model.RoleGuest); err != nil {
			return err
		}
	}

	return nil
}

// linkPerson attaches the tags, weddings and tasks a person record names.
func linkPerson(b *model.Book, p *model.Person, pd personDoc, log *slog.Logger) error {
	for _, name := range pd.Tags {
		if b.FindTag(name) == nil {
			log.Info("creating tag missing from tag list", "tag", name, "person", p.Name)
		}
	}

	if _, err := b.TagPersonNamed(p, pd.Tags, true); err != nil {
		return err
	}

	var joins []string

	for _, name := range pd.Weddings {
		w := b.FindWedding(name)
		if w == nil {
			log.Info("creating wedding missing from wedding list", "wedding", name, "person", p.Name)
		} else if w.Has(p) {
			continue
		} else {
			log.Info("adding person to wedding guest list", "wedding", w.Name, "person", p.Name)
		}

		joins = append(joins, name)
	}

	if len(joins) > 0 {
		if _, err := b.AssignWeddingNamed(p, joins, model.RoleGuest, true); err != nil {
			return err
		}
	}

	var tasks []*model.Task

	for _, kd := range pd.Tasks {
		t, err := kd.task()
		if err != nil {
			return err
		}

		canonical := b.FindTask(t)
		if canonical == nil {
			log.Info("adding task missing from task list", "task", t.Description, "person", p.Name)

			if err := b.AddTask(t); err != nil {
				return err
			}

			canonical = t
		}

		tasks = append(tasks, canonical)
	}

	if len(tasks) > 0 {
		return b.AssignTasks(p, tasks)
	}

	return nil
}

func (kd taskDoc) task() (*model.Task, error) {
	kind, err := model.ParseTaskKind(kd.Type)
	if err != nil {
		return nil, err
	}

	var t *model.Task

	switch kind {
	case model.KindTodo:
		t, err = model.NewTodo(kd.Description)
	case model.KindDeadline:
		t, err = model.NewDeadline(kd.Description, kd.By)
	case model.KindEvent:
		t, err = model.NewEvent(kd.Description, kd.From, kd.To)
	}

	if err != nil {
		return nil, err
	}

	t.Done = kd.Done

	return t, nil
}

// fromBook flattens b into its on-disk shape.
func fromBook(b *model.Book) *document {
	doc := &document{
		Persons:  []personDoc{},
		Tags:     []tagDoc{},
		Weddings: []weddingDoc{},
		Tasks:    []taskDoc{},
	}

	for _, p := range b.Persons() {
		pd := personDoc{
			Name:     p.Name,
			Phone:    p.Phone,
			Email:    p.Email,
			Address:  p.Address,
			Tags:     []string{},
			Weddings: []string{},
			Tasks:    []taskDoc{},
			Vendor:   p.Vendor,
		}

		for _, t := range p.Tags() {
			pd.Tags = append(pd.Tags, t.Name)
		}

		for _, w := range p.Weddings() {
			pd.Weddings = append(pd.Weddings, w.Name)
		}

		for _, t := range p.Tasks() {
			pd.Tasks = append(pd.Tasks, taskToDoc(t))
		}

		doc.Persons = append(doc.Persons, pd)
	}

	for _, t := range b.Tags() {
		doc.Tags = append(doc.Tags, tagDoc{Name: t.Name})
	}

	for _, w := range b.Weddings() {
		wd := weddingDoc{Name: w.Name, Guests: []personRef{}}

		if p := w.Partner1(); p != nil {
			ref := personRef(p.Identity())
			wd.Partner1 = &ref
		}

		if p := w.Partner2(); p != nil {
			ref := personRef(p.Identity())
			wd.Partner2 = &ref
		}

		for _, g := range w.Guests() {
			wd.Guests = append(wd.Guests, personRef(g.Identity()))
		}

		doc.Weddings = append(doc.Weddings, wd)
	}

	for _, t := range b.Tasks() {
		doc.Tasks = append(doc.Tasks, taskToDoc(t))
	}

	return doc
}

func taskToDoc(t *model.Task) taskDoc {
	kd := taskDoc{Type: string(t.Kind), Description: t.Description, Done: t.Done}

	switch t.Kind {
	case model.KindTodo:
	case model.KindDeadline:
		kd.By = t.By.Format(model.DateLayout)
	case model.KindEvent:
		kd.From = t.From.Format(model.DateLayout)
		kd.To = t.To.Format(model.DateLayout)
	}

	return kd
}
